// Package client builds the text-generation client used by egglens.
//
// A Client wraps exactly one provider (Google Gemini, OpenAI or Anthropic)
// selected at startup. Every Chat call gets its own timeout and is
// attempted once; failures are returned to the caller, which decides how to
// degrade.
//
//	c, err := client.New(ctx, client.Config{
//	    Provider: egglens.ProviderGoogle,
//	    APIKey:   os.Getenv("GOOGLE_API_KEY"),
//	    Timeout:  20 * time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Events
//
// Pass a channel in Config.Events to observe requests:
//
//	events := make(chan client.Event, 64)
//	c, _ := client.New(ctx, client.Config{APIKey: key, Events: events})
//	go func() {
//	    for ev := range events {
//	        slog.Debug("llm", "type", ev.Type, "model", ev.Model, "duration", ev.Duration)
//	    }
//	}()
//
// Events are sent without blocking and dropped when the channel is full.
package client
