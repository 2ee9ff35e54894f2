package model

import (
	"fmt"
	"strings"

	ai "github.com/spetersoncode/egglens"
)

// ChatModel represents a chat/completion model from any provider.
type ChatModel struct {
	id       string
	provider ai.Provider
	pricing  ChatPricing
}

// String returns the API identifier for this model.
func (m ChatModel) String() string { return m.id }

// Provider returns which provider this model belongs to.
func (m ChatModel) Provider() ai.Provider { return m.provider }

// Pricing returns the pricing for this model. Unknown models report zero.
func (m ChatModel) Pricing() ChatPricing { return m.pricing }

// Google Gemini Models
// Model pricing last verified: December 14, 2025
var (
	Gemini25Pro       = ChatModel{id: "gemini-2.5-pro", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 1.25, OutputPerMillion: 10.00}}
	Gemini25Flash     = ChatModel{id: "gemini-2.5-flash", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 0.15, OutputPerMillion: 0.60}}
	Gemini25FlashLite = ChatModel{id: "gemini-2.5-flash-lite", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 0.075, OutputPerMillion: 0.30}}

	// DefaultGeminiModel is the recommended default Google model.
	DefaultGeminiModel = Gemini25Flash
)

// OpenAI GPT Models
// Model pricing last verified: December 14, 2025
var (
	GPT5     = ChatModel{id: "gpt-5", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 1.25, OutputPerMillion: 10.00}}
	GPT5Mini = ChatModel{id: "gpt-5-mini", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 0.25, OutputPerMillion: 1.00}}
	GPT5Nano = ChatModel{id: "gpt-5-nano", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 0.10, OutputPerMillion: 0.40}}

	// DefaultGPTModel is the recommended default OpenAI model.
	DefaultGPTModel = GPT5Mini
)

// Anthropic Claude Models
// Model pricing last verified: December 14, 2025
var (
	ClaudeSonnet45 = ChatModel{id: "claude-sonnet-4-5", provider: ai.ProviderAnthropic, pricing: ChatPricing{InputPerMillion: 3.00, OutputPerMillion: 15.00}}
	ClaudeHaiku45  = ChatModel{id: "claude-haiku-4-5", provider: ai.ProviderAnthropic, pricing: ChatPricing{InputPerMillion: 1.00, OutputPerMillion: 5.00}}

	// DefaultClaudeModel is the recommended default Anthropic model.
	DefaultClaudeModel = ClaudeHaiku45
)

var known = []ChatModel{
	Gemini25Pro, Gemini25Flash, Gemini25FlashLite,
	GPT5, GPT5Mini, GPT5Nano,
	ClaudeSonnet45, ClaudeHaiku45,
}

// Default returns the default chat model for a provider.
func Default(p ai.Provider) ChatModel {
	switch p {
	case ai.ProviderOpenAI:
		return DefaultGPTModel
	case ai.ProviderAnthropic:
		return DefaultClaudeModel
	default:
		return DefaultGeminiModel
	}
}

// Parse resolves a model ID for a provider. An empty ID returns the
// provider default. IDs not in the catalog are accepted as-is, without
// pricing, so new models can be used before they are listed here.
func Parse(p ai.Provider, id string) (ChatModel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Default(p), nil
	}
	for _, m := range known {
		if m.id == id {
			if m.provider != p {
				return ChatModel{}, fmt.Errorf("model %q belongs to %s, not %s", id, m.provider, p)
			}
			return m, nil
		}
	}
	return ChatModel{id: id, provider: p}, nil
}
