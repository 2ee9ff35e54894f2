package lens

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	ai "github.com/spetersoncode/egglens"
)

// MaxTitleLength is the longest canonical title accepted, in characters.
// Longer replies are treated as chatter, not a title.
const MaxTitleLength = 120

// Extractor resolves the canonical movie title behind a query.
type Extractor struct {
	chat   ai.ChatProvider
	logger *slog.Logger
}

// NewExtractor creates an Extractor backed by chat.
func NewExtractor(chat ai.ChatProvider, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{chat: chat, logger: logger}
}

// Extract returns the canonical title for query, or "" if the provider
// gave none, gave something too long to be a title, or failed.
func (e *Extractor) Extract(ctx context.Context, query string) string {
	resp, err := e.chat.Chat(ctx,
		[]ai.Message{ai.UserMessage(query)},
		ai.WithSystem(TitleInstructions),
		ai.WithTemperature(0),
	)
	if err != nil {
		e.logger.Warn("title extraction failed",
			"error", err,
			"category", ai.CategoryOf(err),
			"status", ai.StatusCodeOf(err),
		)
		return ""
	}
	return cleanTitle(resp.Content)
}

// cleanTitle trims whitespace and one layer of matching quotes, then
// applies the length bound.
func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range []string{`"`, "'", "`", "“"} {
		closing := q
		if q == "“" {
			closing = "”"
		}
		if len(s) >= len(q)+len(closing) && strings.HasPrefix(s, q) && strings.HasSuffix(s, closing) {
			s = strings.TrimSpace(s[len(q) : len(s)-len(closing)])
			break
		}
	}
	if s == "" || utf8.RuneCountInString(s) > MaxTitleLength {
		return ""
	}
	return s
}
