package egglens

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_ZeroValueIsEmpty(t *testing.T) {
	var h History
	assert.Zero(t, h.Len())
	assert.Empty(t, h.Entries())
}

func TestHistory_Prepend(t *testing.T) {
	var h History
	for i := range 5 {
		h.Prepend(NewHistoryEntry(fmt.Sprintf("q%d", i), "eggs", "", ""))
	}

	entries := h.Entries()
	require.Len(t, entries, 5)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("q%d", 4-i), e.Query, "newest first")
	}

	t.Run("prior entries keep relative order", func(t *testing.T) {
		before := h.Entries()
		h.Prepend(NewHistoryEntry("q5", "eggs", "", ""))
		after := h.Entries()

		require.Len(t, after, len(before)+1)
		assert.Equal(t, "q5", after[0].Query)
		assert.Equal(t, before, after[1:])
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		n := h.Len()
		h.Prepend(NewHistoryEntry("q5", "eggs", "", ""))
		assert.Equal(t, n+1, h.Len())
	})
}

func TestHistory_Clear(t *testing.T) {
	var h History
	h.Prepend(NewHistoryEntry("Inception", "eggs", "", ""))
	h.Prepend(NewHistoryEntry("Interstellar", "eggs", "", ""))

	h.Clear()
	assert.Zero(t, h.Len())

	h.Clear()
	assert.Zero(t, h.Len(), "clearing an empty history is a no-op")
}

func TestHistory_EntriesIsCopy(t *testing.T) {
	var h History
	h.Prepend(NewHistoryEntry("Inception", "eggs", "", ""))

	entries := h.Entries()
	entries[0].Query = "mutated"

	assert.Equal(t, "Inception", h.Entries()[0].Query)
}

func TestNewHistoryEntry(t *testing.T) {
	a := NewHistoryEntry("First", "eggs", "https://image.tmdb.org/t/p/w500/a.jpg", "Heat")
	b := NewHistoryEntry("Second", "eggs", "", "")

	assert.Len(t, a.ID, 26)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "Heat", a.TitleHint)
	assert.False(t, a.CreatedAt.IsZero())
	assert.False(t, b.CreatedAt.Before(a.CreatedAt))
}
