package analyze

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/doc-digest/models"
	"github.com/dtnitsch/doc-digest/pkg/db"
	"github.com/dtnitsch/doc-digest/pkg/extract"
	"github.com/dtnitsch/doc-digest/pkg/nlp"
)

// AnalyzeAction processes every collection directory under --input and
// writes one digest JSON per collection. A failing collection is logged and
// does not abort its siblings.
func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	opts := models.DefaultOptions()
	if cfgPath := c.String("config"); cfgPath != "" {
		loaded, err := models.LoadOptions(cfgPath)
		if err != nil {
			return fmt.Errorf("invalid options file: %w", err)
		}
		opts = loaded
	}
	if c.IsSet("workers") {
		opts.Workers = c.Int("workers")
		opts.Normalize()
	}

	inputDir := c.String("input")
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	var database *db.DB
	if !c.Bool("no-db") {
		database, err = db.Open(c.String("db"))
		if err != nil {
			// Run history is best-effort; the digest output itself does
			// not depend on it.
			logger.Warn("failed to open database, run history disabled", "error", err)
			database = nil
		} else {
			defer database.Close()
		}
	}

	pipeline := &Pipeline{
		NLP:  nlp.NewPipeline(),
		Gate: extract.NewEnglishGate(),
		Opts: opts,
	}

	outputDir := c.String("output-dir")
	processed, failed := 0, 0

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		collectionLogger := logger.With("collection", name)

		result, err := pipeline.ProcessCollection(collectionLogger, filepath.Join(inputDir, name))
		if err != nil {
			collectionLogger.Error("collection failed", "error", err)
			failed++
			continue
		}

		path, err := WriteResult(outputDir, name, result)
		if err != nil {
			collectionLogger.Error("failed to write result", "error", err)
			failed++
			continue
		}

		collectionLogger.Info("collection processed",
			"output", path,
			"sections_considered", result.TotalSectionsConsidered,
			"sections_selected", result.SelectedSectionsCount)
		processed++

		if database != nil {
			recordRun(collectionLogger, database, name, result)
		}
	}

	if processed == 0 && failed > 0 {
		return fmt.Errorf("all %d collections failed", failed)
	}
	fmt.Printf("Processed %d collections (%d failed)\n", processed, failed)
	return nil
}

// recordRun stores the run in the history database. Failures are logged,
// never fatal.
func recordRun(logger *slog.Logger, database *db.DB, collection string, result *models.CollectionResult) {
	run := db.RunRecord{
		Collection:         collection,
		PersonaRole:        result.Metadata.Persona,
		JobTask:            result.Metadata.JobToBeDone,
		DocumentCount:      len(result.Metadata.InputDocuments),
		SectionsConsidered: result.TotalSectionsConsidered,
		SectionsSelected:   result.SelectedSectionsCount,
	}

	sections := make([]db.SectionRecord, 0, len(result.ExtractedSections))
	for i, s := range result.ExtractedSections {
		rec := db.SectionRecord{
			Document:     s.Document,
			SectionTitle: s.SectionTitle,
			Page:         s.PageNumber,
			Importance:   s.ImportanceRank,
		}
		if i < len(result.SubsectionAnalysis) {
			rec.RefinedText = result.SubsectionAnalysis[i].RefinedText
		}
		sections = append(sections, rec)
	}

	runID, err := database.InsertRun(run, sections)
	if err != nil {
		logger.Warn("failed to record run", "error", err)
		return
	}
	logger.Info("run recorded", "run_id", runID)
}
