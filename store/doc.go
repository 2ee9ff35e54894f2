// Package store keeps per-session query histories in memory.
//
// Each browser session gets a [Session] that owns one History. Sessions are
// addressed by random UUIDs and dropped by [Sessions.Sweep] once idle longer
// than the TTL; nothing survives a restart.
//
//	sessions := store.New(24 * time.Hour)
//	s := sessions.GetOrCreate(cookieValue)
//	s.Do(func(h *egglens.History) {
//		orchestrator.Submit(ctx, query, h)
//	})
//
// Requests for the same session run one at a time through [Session.Do];
// different sessions never share state.
package store
