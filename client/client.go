package client

import (
	"context"
	"fmt"
	"time"

	ai "github.com/spetersoncode/egglens"
	"github.com/spetersoncode/egglens/internal/provider/anthropic"
	"github.com/spetersoncode/egglens/internal/provider/google"
	"github.com/spetersoncode/egglens/internal/provider/openai"
	"github.com/spetersoncode/egglens/model"
)

// DefaultTimeout bounds each chat call when Config.Timeout is unset.
const DefaultTimeout = 30 * time.Second

// Config holds configuration for creating a client.
type Config struct {
	// Provider selects the backend. Empty selects Google.
	Provider ai.Provider

	// APIKey authenticates with the selected provider. Required.
	APIKey string

	// Model overrides the provider's default chat model.
	Model ai.Model

	// Timeout bounds each Chat call. Zero uses DefaultTimeout.
	Timeout time.Duration

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// ErrMissingAPIKey is returned when no API key is configured for the
// selected provider.
type ErrMissingAPIKey struct {
	Provider string
}

func (e *ErrMissingAPIKey) Error() string {
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// Client is a single-provider chat client. Each call is bounded by the
// configured timeout and attempted exactly once.
type Client struct {
	provider ai.ChatProvider
	name     ai.Provider
	model    ai.Model
	timeout  time.Duration
	events   chan<- Event
}

// New creates a client for the configured provider.
func New(ctx context.Context, cfg Config) (*Client, error) {
	name := cfg.Provider
	if name == "" {
		name = ai.ProviderGoogle
	}
	if cfg.APIKey == "" {
		return nil, &ErrMissingAPIKey{Provider: name.String()}
	}

	m := cfg.Model
	if m == nil {
		m = model.Default(name)
	}
	if m.Provider() != name {
		return nil, fmt.Errorf("model %q belongs to %s, not %s", m.String(), m.Provider(), name)
	}

	var p ai.ChatProvider
	switch name {
	case ai.ProviderGoogle:
		g, err := google.New(ctx, cfg.APIKey, google.WithModel(m))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Google client: %w", err)
		}
		p = g
	case ai.ProviderOpenAI:
		p = openai.New(cfg.APIKey, openai.WithModel(m))
	case ai.ProviderAnthropic:
		p = anthropic.New(cfg.APIKey, anthropic.WithModel(m))
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}

	cfg.Provider = name
	cfg.Model = m
	return newWithProvider(p, cfg), nil
}

func newWithProvider(p ai.ChatProvider, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		provider: p,
		name:     cfg.Provider,
		model:    cfg.Model,
		timeout:  timeout,
		events:   cfg.Events,
	}
	return c
}

// Provider returns the backend this client talks to.
func (c *Client) Provider() ai.Provider { return c.name }

// Model returns the default chat model.
func (c *Client) Model() ai.Model { return c.model }

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	modelName := c.modelName(opts)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	emit(c.events, Event{
		Type:      EventRequestStart,
		Operation: "chat",
		Provider:  c.name,
		Model:     modelName,
	})
	start := time.Now()

	resp, err := c.provider.Chat(ctx, messages, opts...)
	if err != nil {
		emit(c.events, Event{
			Type:      EventRequestError,
			Operation: "chat",
			Provider:  c.name,
			Model:     modelName,
			Duration:  time.Since(start),
			Error:     err,
		})
		return nil, err
	}

	emit(c.events, Event{
		Type:      EventRequestComplete,
		Operation: "chat",
		Provider:  c.name,
		Model:     modelName,
		Duration:  time.Since(start),
		Usage:     &resp.Usage,
		Cost:      c.cost(opts, resp.Usage),
	})
	return resp, nil
}

func (c *Client) modelName(opts []ai.Option) string {
	if o := ai.ApplyOptions(opts...); o.Model != nil {
		return o.Model.String()
	}
	if c.model != nil {
		return c.model.String()
	}
	return ""
}

func (c *Client) cost(opts []ai.Option, u ai.Usage) float64 {
	m := c.model
	if o := ai.ApplyOptions(opts...); o.Model != nil {
		m = o.Model
	}
	if cm, ok := m.(model.ChatModel); ok {
		return cm.Pricing().Cost(u)
	}
	return 0
}

var _ ai.ChatProvider = (*Client)(nil)
