// Package db implements the run-history CLI commands.
package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/dtnitsch/doc-digest/pkg/db"
)

// RunsAction lists recent digest runs.
func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-24s %-22s %-6s %-10s %-9s\n",
		"ID", "Created", "Collection", "Persona", "Docs", "Considered", "Selected")
	fmt.Println(strings.Repeat("-", 104))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-24s %-22s %-6d %-10d %-9d\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			truncate(r.Collection, 24),
			truncate(r.PersonaRole, 22),
			r.DocumentCount,
			r.SectionsConsidered,
			r.SectionsSelected,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}

// StatsAction prints aggregate counts over all recorded runs.
func StatsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	stats, err := database.Stats()
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	fmt.Println("Digest run history")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Runs:                %d\n", stats.TotalRuns)
	fmt.Printf("Sections selected:   %d\n", stats.TotalSectionsKept)
	fmt.Printf("Distinct personas:   %d\n", stats.DistinctPersonas)
	fmt.Printf("Distinct collections: %d\n", stats.DistinctCollection)
	fmt.Printf("\nDatabase: %s\n", database.Path())
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
