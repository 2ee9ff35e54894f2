// Package anthropic provides an Anthropic Claude client implementing [egglens.ChatProvider].
//
// This package wraps the official Anthropic Go SDK. System instructions are
// sent as system text blocks; the Messages API requires a max token count,
// so requests without [egglens.WithMaxTokens] use a fixed default.
//
//	client := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
//
//	resp, err := client.Chat(ctx,
//	    []egglens.Message{egglens.UserMessage("Hidden details in Heat?")},
//	    egglens.WithSystem("You are a movie fan."),
//	)
package anthropic
