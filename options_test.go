package egglens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testModel is a simple Model implementation for testing.
type testModel string

func (m testModel) String() string     { return string(m) }
func (m testModel) Provider() Provider { return ProviderGoogle }

func TestApplyOptions(t *testing.T) {
	t.Run("returns empty options when no options provided", func(t *testing.T) {
		opts := ApplyOptions()
		assert.NotNil(t, opts)
		assert.Nil(t, opts.Model)
		assert.Zero(t, opts.MaxTokens)
		assert.Nil(t, opts.Temperature)
		assert.Empty(t, opts.System)
	})

	t.Run("applies multiple options", func(t *testing.T) {
		opts := ApplyOptions(
			WithModel(testModel("gemini-2.5-flash")),
			WithMaxTokens(1000),
			WithTemperature(0.7),
			WithSystem("be a movie fan"),
		)

		assert.Equal(t, "gemini-2.5-flash", opts.Model.String())
		assert.Equal(t, 1000, opts.MaxTokens)
		require.NotNil(t, opts.Temperature)
		assert.Equal(t, 0.7, *opts.Temperature)
		assert.Equal(t, "be a movie fan", opts.System)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		opts := ApplyOptions(WithSystem("first"), WithSystem("second"))
		assert.Equal(t, "second", opts.System)
	})
}

func TestUserMessage(t *testing.T) {
	msg := UserMessage("Inception spinning top")
	assert.Equal(t, RoleUser, msg.Role)
	assert.Equal(t, "Inception spinning top", msg.Content)
}
