package egglens

import (
	"fmt"
	"strings"
)

// Provider identifies a text-generation provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderGoogle    Provider = "google"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// ParseProvider converts a case-insensitive name into a Provider.
// An empty name selects [ProviderGoogle].
func ParseProvider(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "google", "gemini":
		return ProviderGoogle, nil
	case "openai":
		return ProviderOpenAI, nil
	case "anthropic", "claude":
		return ProviderAnthropic, nil
	default:
		return "", fmt.Errorf("unknown provider: %s (must be google, openai, or anthropic)", name)
	}
}
