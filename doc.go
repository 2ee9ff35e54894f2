// Package egglens finds hidden Easter eggs in movies.
//
// A user submits a free-text movie query ("Quidditch scenes in Harry
// Potter"). egglens asks a text-generation provider for a list of
// Easter eggs, resolves a poster image from TMDb, and records the result
// in a per-session [History], newest first.
//
// This root package holds the provider-neutral types shared by the rest of
// the module:
//
//   - [ChatProvider]: the text-generation capability (Gemini, OpenAI or Claude)
//   - [Message], [Response], [Option]: one stateless chat exchange
//   - [HistoryEntry], [History]: the session-scoped chat history
//   - [Error]: categorized provider errors
//
// The orchestration lives in [github.com/spetersoncode/egglens/lens], the
// poster lookup in [github.com/spetersoncode/egglens/poster], and provider
// construction in [github.com/spetersoncode/egglens/client].
//
// # Basic Usage
//
//	c, err := client.New(ctx, client.Config{
//	    Provider: egglens.ProviderGoogle,
//	    APIKey:   os.Getenv("GOOGLE_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	o := lens.New(c, poster.New(poster.Config{APIKey: os.Getenv("TMDB_API_KEY")}))
//
//	var h egglens.History
//	entry, ok := o.Submit(ctx, "Any fun secrets in Interstellar's tesseract scene?", &h)
//	if ok {
//	    fmt.Println(entry.Assistant)
//	}
package egglens
