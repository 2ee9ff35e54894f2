// Command egglens finds hidden Easter eggs in movies.
//
// Usage:
//
//	egglens serve                      # web UI on :8080
//	egglens ask "2nd Harry Potter movie"
//	egglens mcp                        # MCP tool server on stdio
//
// Configuration comes from environment variables (a .env file is loaded if
// present) and an optional YAML file given with --config. GOOGLE_API_KEY is
// required for the default provider; TMDB_API_KEY enables posters.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "egglens:", err)
		code := 1
		var exit cli.ExitCoder
		if errors.As(err, &exit) {
			code = exit.ExitCode()
		}
		os.Exit(code)
	}
}
