package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/spetersoncode/egglens/client"
	"github.com/spetersoncode/egglens/internal/config"
	"github.com/spetersoncode/egglens/lens"
	"github.com/spetersoncode/egglens/model"
	"github.com/spetersoncode/egglens/poster"
)

// newApp creates the CLI application with all commands.
func newApp() *cli.App {
	app := &cli.App{
		Name:    "egglens",
		Usage:   "Find hidden Easter eggs in movies",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, EnvVars: []string{"EGGLENS_CONFIG"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "log-level", Usage: "Log level: trace|debug|info|warn|error (overrides EGGLENS_LOG_LEVEL)"},
		},
		Commands: []*cli.Command{
			serveCmd(),
			askCmd(),
			mcpCmd(),
		},
	}
	// Errors are printed once by main.
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// runtime holds the components shared by every command.
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger
	lens   *lens.Orchestrator
}

// setup loads configuration and wires the text-generation client, poster
// resolver and orchestrator. Logs go to logOut; the MCP command needs
// stdout kept clean for the protocol.
func setup(c *cli.Context, logOut io.Writer) (*runtime, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := config.NewLogger(logOut, level)
	slog.SetDefault(logger)

	provider := cfg.ProviderName()
	chatModel, err := model.Parse(provider, cfg.Model)
	if err != nil {
		return nil, err
	}

	events := make(chan client.Event, 64)
	go logEvents(c.Context, logger, events)

	chat, err := client.New(c.Context, client.Config{
		Provider: provider,
		APIKey:   cfg.APIKey(),
		Model:    chatModel,
		Timeout:  cfg.LLMTimeout,
		Events:   events,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", provider, err)
	}

	opts := []lens.Option{
		lens.WithLogger(logger),
		lens.WithTitleExtraction(cfg.TitleExtraction),
	}

	var resolver lens.PosterResolver
	switch {
	case !cfg.Posters:
		logger.Info("posters disabled by configuration")
	case cfg.TMDbKey == "":
		logger.Info("posters disabled, TMDB_API_KEY not set")
	default:
		resolver = poster.New(poster.Config{
			APIKey:    cfg.TMDbKey,
			Timeout:   cfg.PosterTimeout,
			UserAgent: "egglens/" + Version,
			Logger:    logger.With("component", "poster"),
		})
	}

	logger.Debug("egglens configured",
		"provider", provider,
		"model", chatModel.String(),
		"title_extraction", cfg.TitleExtraction,
		"posters", resolver != nil,
	)

	return &runtime{
		cfg:    cfg,
		logger: logger,
		lens:   lens.New(chat, resolver, opts...),
	}, nil
}

// loadConfig reads configuration and applies the global --log-level flag.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if lvl := c.String("log-level"); lvl != "" {
		if _, err := config.ParseLogLevel(lvl); err != nil {
			return nil, err
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// logEvents drains client events into the debug log until ctx ends.
func logEvents(ctx context.Context, logger *slog.Logger, events <-chan client.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			attrs := []any{
				"type", ev.Type,
				"operation", ev.Operation,
				"provider", ev.Provider,
				"model", ev.Model,
			}
			if ev.Duration > 0 {
				attrs = append(attrs, "duration_ms", ev.Duration.Milliseconds())
			}
			if ev.Usage != nil {
				attrs = append(attrs,
					"input_tokens", ev.Usage.InputTokens,
					"output_tokens", ev.Usage.OutputTokens,
					"cost_usd", ev.Cost,
				)
			}
			if ev.Error != nil {
				attrs = append(attrs, "error", ev.Error)
			}
			logger.Debug("llm event", attrs...)
		}
	}
}

// stderr is where commands write logs by default.
var stderr io.Writer = os.Stderr
