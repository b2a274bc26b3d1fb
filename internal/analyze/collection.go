package analyze

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dtnitsch/doc-digest/internal/common"
	"github.com/dtnitsch/doc-digest/models"
	"github.com/dtnitsch/doc-digest/pkg/extract"
	"github.com/dtnitsch/doc-digest/pkg/nlp"
	"github.com/dtnitsch/doc-digest/pkg/persona"
	"github.com/dtnitsch/doc-digest/pkg/ranking"
	"github.com/dtnitsch/doc-digest/pkg/refine"
	"github.com/dtnitsch/doc-digest/pkg/segment"
)

// docJob is one document handed to a worker.
type docJob struct {
	Seq      int
	Path     string
	Label    string
	Filename string
}

// docResult is a worker's output for one document. Skipped documents carry
// a reason instead of sections; they never fail the collection.
type docResult struct {
	Seq        int
	Label      string
	Filename   string
	Ranked     []models.RankedSection
	Considered int
	Skipped    string
}

// Pipeline bundles the shared, read-only capabilities each collection run
// needs. Build it once per process.
type Pipeline struct {
	NLP  *nlp.Pipeline
	Gate *extract.EnglishGate
	Opts models.Options
}

// ProcessCollection runs the full digest for one collection directory:
// config discovery, per-document segmentation and ranking on a worker pool,
// cross-document selection, and refinement. Document-level failures are
// absorbed; only a missing or malformed config fails the collection.
func (p *Pipeline) ProcessCollection(logger *slog.Logger, dir string) (*models.CollectionResult, error) {
	cfgPath, err := findConfig(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := models.LoadCollectionConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	ctx := persona.NewContext(cfg.Persona.Role, cfg.Job.Task, p.Opts.PersonaRules, p.NLP)
	logger.Info("persona context built",
		"role", cfg.Persona.Role, "rule", ctx.Rule.String(), "documents", len(cfg.Documents))

	docsDir := filepath.Join(dir, "pdfs")
	if _, statErr := os.Stat(docsDir); statErr != nil {
		docsDir = dir
	}

	collected := p.processDocuments(logger, docsDir, cfg.Documents, ctx)

	// Workers finish in arbitrary order; restore discovery order so tie
	// handling stays deterministic across runs.
	sort.Slice(collected, func(i, j int) bool { return collected[i].Seq < collected[j].Seq })

	var all []models.RankedSection
	totalConsidered := 0
	fileByLabel := make(map[string]string, len(collected))
	for _, r := range collected {
		if r.Skipped != "" {
			logger.Warn("document skipped", "document", r.Label, "reason", r.Skipped)
			continue
		}
		all = append(all, r.Ranked...)
		totalConsidered += r.Considered
		fileByLabel[r.Label] = r.Filename
	}

	top := ranking.SelectTop(all, ranking.Policy{
		MinSelected: p.Opts.MinSelected,
		Fraction:    p.Opts.SelectionFraction,
	})

	result := &models.CollectionResult{
		Metadata: models.RunMetadata{
			InputDocuments:      documentNames(cfg.Documents),
			Persona:             cfg.Persona.Role,
			JobToBeDone:         cfg.Job.Task,
			ProcessingTimestamp: time.Now().Format(time.RFC3339),
		},
		TotalSectionsConsidered: totalConsidered,
		SelectedSectionsCount:   len(top),
	}

	for _, sec := range top {
		result.ExtractedSections = append(result.ExtractedSections, models.ExtractedSection{
			Document:       sec.Document,
			SectionTitle:   sec.SectionTitle,
			ImportanceRank: sec.Importance,
			PageNumber:     sec.Page,
		})
		result.SubsectionAnalysis = append(result.SubsectionAnalysis, models.SubsectionAnalysis{
			Document:    common.FileLabel(sec.Document, fileByLabel[sec.Document]),
			RefinedText: refine.Refine(sec.RawText, ctx, p.NLP, p.Opts.RefineSentences),
			PageNumber:  sec.Page,
		})
	}

	return result, nil
}

// processDocuments fans the collection's documents out over a worker pool
// and gathers per-document results.
func (p *Pipeline) processDocuments(logger *slog.Logger, docsDir string, docs []models.DocumentRef, ctx *persona.Context) []docResult {
	jobs := make(chan docJob, len(docs))
	results := make(chan docResult, len(docs))

	workers := p.Opts.Workers
	if workers > len(docs) {
		workers = len(docs)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go p.worker(w, logger, ctx, &wg, jobs, results)
	}

	for i, d := range docs {
		jobs <- docJob{
			Seq:      i,
			Path:     filepath.Join(docsDir, d.Filename),
			Label:    d.Label(),
			Filename: d.Filename,
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	collected := make([]docResult, 0, len(docs))
	for r := range results {
		collected = append(collected, r)
	}
	return collected
}

// worker processes documents from the jobs channel: extract, language gate,
// segment, rank. Every failure mode degrades to a skipped document.
func (p *Pipeline) worker(id int, logger *slog.Logger, ctx *persona.Context, wg *sync.WaitGroup, jobs <-chan docJob, results chan<- docResult) {
	defer wg.Done()
	for job := range jobs {
		res := docResult{Seq: job.Seq, Label: job.Label, Filename: job.Filename}

		if _, err := os.Stat(job.Path); err != nil {
			res.Skipped = "file not found"
			results <- res
			continue
		}

		logger.Info("processing document", "worker", id, "document", job.Label)

		fragments, err := extract.FragmentsFromFile(job.Path)
		if err != nil {
			logger.Warn("extraction failed", "worker", id, "document", job.Label, "error", err)
			res.Skipped = "extraction failed"
			results <- res
			continue
		}
		if len(fragments) == 0 {
			res.Skipped = "no extractable text"
			results <- res
			continue
		}

		if p.Gate != nil && !p.Gate.IsEnglish(extract.JoinText(fragments)) {
			res.Skipped = "not english"
			results <- res
			continue
		}

		sections := segment.Segment(fragments)
		res.Considered = len(sections)
		// Cross-document aggregation follows, so the looser word floor
		// applies here; the strict floor is for standalone ranking.
		res.Ranked = ranking.Rank(sections, job.Label, ctx, p.Opts.MinAggregateWords)
		results <- res
	}
}

// findConfig locates the collection's JSON config: the first *.json file in
// the directory.
func findConfig(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read collection directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no config file found in %s", dir)
}

func documentNames(docs []models.DocumentRef) []string {
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Filename
	}
	return names
}
