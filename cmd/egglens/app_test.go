package main

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"
	"time"

	ai "github.com/spetersoncode/egglens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	stderr = io.Discard
}

func TestWriteText(t *testing.T) {
	t.Run("with title and poster", func(t *testing.T) {
		var buf bytes.Buffer
		writeText(&buf, ai.HistoryEntry{
			Assistant: "1. 🐍 Parseltongue",
			Poster:    "https://image.tmdb.org/t/p/w500/x.jpg",
			TitleHint: "Harry Potter and the Chamber of Secrets",
		})
		assert.Equal(t, "🎬 Harry Potter and the Chamber of Secrets\n🖼️  https://image.tmdb.org/t/p/w500/x.jpg\n\n1. 🐍 Parseltongue\n", buf.String())
	})

	t.Run("eggs only", func(t *testing.T) {
		var buf bytes.Buffer
		writeText(&buf, ai.HistoryEntry{Assistant: "❌ Error fetching Easter eggs: boom"})
		assert.Equal(t, "❌ Error fetching Easter eggs: boom\n", buf.String())
	})
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	entry := ai.HistoryEntry{ID: "01J", Query: "Up", Assistant: "eggs", CreatedAt: time.Unix(0, 0).UTC()}
	require.NoError(t, writeJSON(&buf, entry))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Up", got["user"])
	assert.Equal(t, "eggs", got["assistant"])
	assert.NotContains(t, got, "poster")
}

func TestApp_Commands(t *testing.T) {
	app := newApp()
	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"serve", "ask", "mcp"}, names)
}

func TestApp_AskRequiresQuery(t *testing.T) {
	app := newApp()
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	err := app.Run([]string{"egglens", "ask"})
	assert.Error(t, err)
}

func TestApp_MissingKeyIsFatal(t *testing.T) {
	for _, k := range []string{"EGGLENS_PROVIDER", "GOOGLE_API_KEY", "EGGLENS_CONFIG", "EGGLENS_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	app := newApp()
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	err := app.Run([]string{"egglens", "ask", "Inception"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY is required")
}

func TestApp_BadLogLevelFlag(t *testing.T) {
	t.Setenv("EGGLENS_PROVIDER", "")
	t.Setenv("GOOGLE_API_KEY", "k")
	app := newApp()
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	err := app.Run([]string{"egglens", "--log-level", "loud", "ask", "Inception"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
