package lens

import (
	"context"
	"log/slog"
	"strings"
	"time"

	ai "github.com/spetersoncode/egglens"
)

// TitleExtractor finds the canonical movie title behind a query.
type TitleExtractor interface {
	Extract(ctx context.Context, query string) string
}

// EggGenerator produces the Easter-egg text for a query.
type EggGenerator interface {
	Generate(ctx context.Context, query string) string
}

// PosterResolver maps a title to a poster URL. Implementations return ""
// for empty titles without doing any work.
type PosterResolver interface {
	Resolve(ctx context.Context, title string) string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTitleExtraction enables or disables the canonical-title step.
// Enabled by default.
func WithTitleExtraction(enabled bool) Option {
	return func(o *Orchestrator) {
		o.extractTitles = enabled
	}
}

// WithPosters enables or disables poster lookups. Enabled by default when
// a resolver is given.
func WithPosters(enabled bool) Option {
	return func(o *Orchestrator) {
		o.lookupPosters = enabled
	}
}

// WithLogger sets the logger for submissions and step failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// WithTitleExtractor replaces the provider-backed title extractor.
func WithTitleExtractor(e TitleExtractor) Option {
	return func(o *Orchestrator) {
		o.titles = e
	}
}

// WithEggGenerator replaces the provider-backed Easter-egg generator.
func WithEggGenerator(g EggGenerator) Option {
	return func(o *Orchestrator) {
		o.eggs = g
	}
}

// Orchestrator composes title extraction, poster lookup and Easter-egg
// generation into one submission. It holds no per-session state and is
// safe for concurrent use; each caller passes its own History.
type Orchestrator struct {
	titles  TitleExtractor
	eggs    EggGenerator
	posters PosterResolver

	extractTitles bool
	lookupPosters bool
	logger        *slog.Logger
}

// New creates an Orchestrator that uses chat for title extraction and
// Easter eggs and posters for poster lookups. posters may be nil, which
// disables poster lookups.
func New(chat ai.ChatProvider, posters PosterResolver, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		posters:       posters,
		extractTitles: true,
		lookupPosters: posters != nil,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.titles == nil {
		o.titles = NewExtractor(chat, o.logger)
	}
	if o.eggs == nil {
		o.eggs = NewGenerator(chat, o.logger)
	}
	if o.posters == nil {
		o.lookupPosters = false
	}
	return o
}

// Submit answers query and prepends the result to h. Empty or
// whitespace-only queries are ignored and report false.
//
// The steps run sequentially: title extraction, poster lookup by title then
// by raw query, then Easter-egg generation on the raw query. The returned
// entry is the one stored in h.
func (o *Orchestrator) Submit(ctx context.Context, query string, h *ai.History) (ai.HistoryEntry, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return ai.HistoryEntry{}, false
	}
	start := time.Now()

	var title string
	if o.extractTitles {
		title = o.titles.Extract(ctx, query)
	}

	var posterURL string
	if o.lookupPosters {
		posterURL = o.posters.Resolve(ctx, title)
		if posterURL == "" {
			posterURL = o.posters.Resolve(ctx, query)
		}
	}

	// The raw query, not the title: scene-level detail must survive.
	eggs := o.eggs.Generate(ctx, query)

	entry := ai.NewHistoryEntry(query, eggs, posterURL, title)
	h.Prepend(entry)

	o.logger.Info("query answered",
		"entry_id", entry.ID,
		"title_found", title != "",
		"poster_found", posterURL != "",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return entry, true
}

// Clear empties h.
func (o *Orchestrator) Clear(h *ai.History) {
	h.Clear()
}
