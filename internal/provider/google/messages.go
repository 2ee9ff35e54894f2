package google

import (
	"fmt"

	ai "github.com/spetersoncode/egglens"
	"google.golang.org/genai"
)

// convertMessages splits a conversation into Gemini contents and system
// instruction text. Gemini takes system text in the request config rather
// than as a turn.
func convertMessages(messages []ai.Message) ([]*genai.Content, []string) {
	var contents []*genai.Content
	var system []string

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		switch msg.Role {
		case ai.RoleSystem:
			system = append(system, msg.Content)
		case ai.RoleAssistant:
			contents = append(contents, &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		}
	}

	return contents, system
}

// BlockedError indicates the request was blocked by content filtering.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("request blocked: %s", e.Reason)
}

// Category reports blocked prompts as rejected user input.
func (e *BlockedError) Category() ai.ErrorCategory { return ai.ErrorUserInput }

// StatusCode returns 0; blocking is reported in a successful response.
func (e *BlockedError) StatusCode() int { return 0 }
