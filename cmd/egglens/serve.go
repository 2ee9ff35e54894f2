package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/spetersoncode/egglens/internal/web"
	"github.com/spetersoncode/egglens/store"
)

// sweepInterval is how often idle sessions are evicted.
const sweepInterval = 10 * time.Minute

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the web UI",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "secure-cookies", Usage: "Mark the session cookie Secure (use behind TLS)"},
		},
		Action: func(c *cli.Context) error {
			rt, err := setup(c, stderr)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sessions := store.New(rt.cfg.SessionTTL)
			go sweepSessions(ctx, rt, sessions)

			srv := web.New(rt.lens, sessions, Version,
				web.WithLogger(rt.logger.With("component", "web")),
				web.WithSecureCookies(c.Bool("secure-cookies")),
			)
			if rt.cfg.Bind == "" {
				rt.logger.Warn("binding to all interfaces; the UI may be reachable from the network")
			}
			return srv.Run(ctx, rt.cfg.Addr())
		},
	}
}

// sweepSessions evicts idle sessions until ctx ends.
func sweepSessions(ctx context.Context, rt *runtime, sessions *store.Sessions) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := sessions.Sweep(now); n > 0 {
				rt.logger.Info("expired sessions removed", "count", n, "live", sessions.Len())
			}
		}
	}
}
