package egglens

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// HistoryEntry is one answered query in a session.
type HistoryEntry struct {
	// ID is a ULID, so IDs sort in creation order.
	ID string `json:"id"`
	// Query is the raw text the user submitted.
	Query string `json:"user"`
	// Assistant is the Easter-egg text, or an error message if generation failed.
	Assistant string `json:"assistant"`
	// Poster is the poster image URL, empty if none was found.
	Poster string `json:"poster,omitempty"`
	// TitleHint is the canonical title used for the poster lookup, empty if
	// none was resolved.
	TitleHint string    `json:"title_hint,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewHistoryEntry builds an entry stamped with a fresh ID and the current time.
func NewHistoryEntry(query, assistant, poster, titleHint string) HistoryEntry {
	now := time.Now()
	return HistoryEntry{
		ID:        newEntryID(now),
		Query:     query,
		Assistant: assistant,
		Poster:    poster,
		TitleHint: titleHint,
		CreatedAt: now,
	}
}

func newEntryID(now time.Time) string {
	id, err := ulid.New(ulid.Timestamp(now), ulid.Monotonic(rand.Reader, 0))
	if err != nil {
		return ulid.Make().String()
	}
	return id.String()
}

// History is the ordered list of entries for one session, newest first.
//
// The zero value is an empty history ready to use. A History is not safe
// for concurrent use; callers that share one must serialize access.
type History struct {
	entries []HistoryEntry
}

// Prepend inserts e at the front. Existing entries keep their order.
func (h *History) Prepend(e HistoryEntry) {
	h.entries = append(h.entries, HistoryEntry{})
	copy(h.entries[1:], h.entries)
	h.entries[0] = e
}

// Clear removes every entry.
func (h *History) Clear() {
	h.entries = nil
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, newest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
