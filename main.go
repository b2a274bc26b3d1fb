package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/doc-digest/internal/analyze"
	dbactions "github.com/dtnitsch/doc-digest/internal/db"
)

func main() {
	app := &cli.App{
		Name:  "doc-digest",
		Usage: "extract and rank document sections by persona relevance",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "process every collection under the input directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Value:   "input",
						Usage:   "directory containing collection subdirectories",
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Value:   "output",
						Usage:   "directory for digest JSON files",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "optional YAML options file (thresholds, persona rule overrides)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "concurrent document workers per collection",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "run-history database path (default: next to binary)",
					},
					&cli.BoolFlag{
						Name:  "no-db",
						Usage: "disable run-history recording",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "log errors only",
					},
				},
				Action: analyze.AnalyzeAction,
			},
			{
				Name:  "db",
				Usage: "inspect recorded digest runs",
				Subcommands: []*cli.Command{
					{
						Name:  "runs",
						Usage: "list recent runs",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "database path"},
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "max runs to list"},
						},
						Action: dbactions.RunsAction,
					},
					{
						Name:  "stats",
						Usage: "aggregate counts over all runs",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "database path"},
						},
						Action: dbactions.StatsAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
