package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	ai "github.com/spetersoncode/egglens"
)

func askCmd() *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "Find Easter eggs for one movie or scene",
		ArgsUsage: "<query...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Print the result as JSON"},
		},
		Action: func(c *cli.Context) error {
			query := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(query) == "" {
				return cli.Exit("usage: egglens ask <query...>", 2)
			}

			rt, err := setup(c, stderr)
			if err != nil {
				return err
			}

			var h ai.History
			entry, _ := rt.lens.Submit(c.Context, query, &h)
			if c.Bool("json") {
				return writeJSON(c.App.Writer, entry)
			}
			writeText(c.App.Writer, entry)
			return nil
		},
	}
}

func writeJSON(w io.Writer, entry ai.HistoryEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entry)
}

func writeText(w io.Writer, entry ai.HistoryEntry) {
	if entry.TitleHint != "" {
		fmt.Fprintf(w, "🎬 %s\n", entry.TitleHint)
	}
	if entry.Poster != "" {
		fmt.Fprintf(w, "🖼️  %s\n", entry.Poster)
	}
	if entry.TitleHint != "" || entry.Poster != "" {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, entry.Assistant)
}
