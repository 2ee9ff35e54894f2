package store

import (
	"sync"
	"sync/atomic"
	"time"

	ai "github.com/spetersoncode/egglens"
)

// Session is one user's history plus its bookkeeping.
type Session struct {
	id      string
	created time.Time

	// lastSeen is Unix nanoseconds. It is kept outside mu so the registry
	// can read it while a submission holds the history.
	lastSeen atomic.Int64

	mu      sync.Mutex
	history ai.History
}

func newSession(id string, now time.Time) *Session {
	s := &Session{id: id, created: now}
	s.touch(now)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// CreatedAt returns when the session was created.
func (s *Session) CreatedAt() time.Time { return s.created }

// Do runs fn with exclusive access to the session's history.
func (s *Session) Do(fn func(h *ai.History)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.history)
}

// Snapshot returns a copy of the history entries, newest first.
func (s *Session) Snapshot() []ai.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) idleSince() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}
