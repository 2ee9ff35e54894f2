package lens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	ai "github.com/spetersoncode/egglens"
)

// errEmptyCompletion is reported when the provider answers with no text.
var errEmptyCompletion = errors.New("provider returned an empty response")

// Generator produces the Easter-egg list for a query.
type Generator struct {
	chat   ai.ChatProvider
	logger *slog.Logger
}

// NewGenerator creates a Generator backed by chat.
func NewGenerator(chat ai.ChatProvider, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{chat: chat, logger: logger}
}

// Generate returns the provider's Easter-egg text for query. The text is
// trimmed and otherwise passed through untouched. If the call fails the
// result is an error message for display; it is never empty.
func (g *Generator) Generate(ctx context.Context, query string) string {
	resp, err := g.chat.Chat(ctx,
		[]ai.Message{ai.UserMessage(query)},
		ai.WithSystem(EggInstructions),
	)
	if err == nil {
		if text := strings.TrimSpace(resp.Content); text != "" {
			return text
		}
		err = errEmptyCompletion
	}

	g.logger.Warn("easter egg generation failed",
		"error", err,
		"category", ai.CategoryOf(err),
		"status", ai.StatusCodeOf(err),
	)
	return ErrorText(err)
}

// ErrorText formats a generation failure for display in place of the
// Easter eggs.
func ErrorText(err error) string {
	return fmt.Sprintf("❌ Error fetching Easter eggs: %v", err)
}
