package model

import (
	"testing"

	ai "github.com/spetersoncode/egglens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatPricing_Cost(t *testing.T) {
	p := ChatPricing{InputPerMillion: 1.00, OutputPerMillion: 10.00}
	cost := p.Cost(ai.Usage{InputTokens: 500_000, OutputTokens: 100_000})
	assert.InDelta(t, 1.5, cost, 1e-9)

	assert.Zero(t, ChatPricing{}.Cost(ai.Usage{InputTokens: 10, OutputTokens: 10}))
}

func TestDefault(t *testing.T) {
	assert.Equal(t, Gemini25Flash, Default(ai.ProviderGoogle))
	assert.Equal(t, DefaultGPTModel, Default(ai.ProviderOpenAI))
	assert.Equal(t, DefaultClaudeModel, Default(ai.ProviderAnthropic))

	for _, p := range []ai.Provider{ai.ProviderGoogle, ai.ProviderOpenAI, ai.ProviderAnthropic} {
		assert.Equal(t, p, Default(p).Provider())
	}
}

func TestParse(t *testing.T) {
	t.Run("empty id returns provider default", func(t *testing.T) {
		m, err := Parse(ai.ProviderGoogle, "  ")
		require.NoError(t, err)
		assert.Equal(t, DefaultGeminiModel, m)
	})

	t.Run("known model keeps pricing", func(t *testing.T) {
		m, err := Parse(ai.ProviderOpenAI, "gpt-5-nano")
		require.NoError(t, err)
		assert.Equal(t, GPT5Nano, m)
		assert.Equal(t, 0.40, m.Pricing().OutputPerMillion)
	})

	t.Run("known model for the wrong provider", func(t *testing.T) {
		_, err := Parse(ai.ProviderAnthropic, "gemini-2.5-pro")
		assert.ErrorContains(t, err, "belongs to google")
	})

	t.Run("unknown model accepted without pricing", func(t *testing.T) {
		m, err := Parse(ai.ProviderGoogle, "gemini-3.0-pro-preview")
		require.NoError(t, err)
		assert.Equal(t, "gemini-3.0-pro-preview", m.String())
		assert.Equal(t, ai.ProviderGoogle, m.Provider())
		assert.Equal(t, ChatPricing{}, m.Pricing())
	})
}
