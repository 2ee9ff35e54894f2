package egglens

import "context"

// ChatProvider defines the interface for text-generation providers.
//
// Every call is a fresh conversation. Implementations must not retain
// state between calls.
type ChatProvider interface {
	// Chat sends a conversation and returns a complete response.
	Chat(ctx context.Context, messages []Message, opts ...Option) (*Response, error)
}
