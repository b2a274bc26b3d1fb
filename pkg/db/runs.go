package db

import (
	"database/sql"
	"fmt"
	"time"
)

// RunRecord is one persisted collection run.
type RunRecord struct {
	RunID              int64
	Collection         string
	PersonaRole        string
	JobTask            string
	DocumentCount      int
	SectionsConsidered int
	SectionsSelected   int
	CreatedAt          time.Time
}

// SectionRecord is one selected section within a run.
type SectionRecord struct {
	Document     string
	SectionTitle string
	Page         int
	Importance   float64
	RefinedText  string
}

// RunStats aggregates run history for the stats command.
type RunStats struct {
	TotalRuns          int
	TotalSectionsKept  int
	DistinctPersonas   int
	DistinctCollection int
}

// InsertRun stores a run and its selected sections in one transaction and
// returns the new run ID.
func (db *DB) InsertRun(run RunRecord, sections []SectionRecord) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO runs (collection, persona_role, job_task, document_count, sections_considered, sections_selected)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.Collection, run.PersonaRole, run.JobTask,
		run.DocumentCount, run.SectionsConsidered, run.SectionsSelected,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO run_sections (run_id, document, section_title, page, importance, refined_text)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare section insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range sections {
		if _, err := stmt.Exec(runID, s.Document, s.SectionTitle, s.Page, s.Importance, s.RefinedText); err != nil {
			return 0, fmt.Errorf("failed to insert section %q: %w", s.SectionTitle, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// GetRun loads a run row by ID.
func (db *DB) GetRun(runID int64) (*RunRecord, error) {
	run := &RunRecord{}
	err := db.QueryRow(`
		SELECT run_id, collection, persona_role, job_task, document_count, sections_considered, sections_selected, created_at
		FROM runs WHERE run_id = ?`, runID,
	).Scan(&run.RunID, &run.Collection, &run.PersonaRole, &run.JobTask,
		&run.DocumentCount, &run.SectionsConsidered, &run.SectionsSelected, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	return run, nil
}

// GetRunSections loads a run's selected sections in insertion order.
func (db *DB) GetRunSections(runID int64) ([]SectionRecord, error) {
	rows, err := db.Query(`
		SELECT document, section_title, page, importance, refined_text
		FROM run_sections WHERE run_id = ? ORDER BY section_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run sections: %w", err)
	}
	defer rows.Close()

	var sections []SectionRecord
	for rows.Next() {
		var s SectionRecord
		var refined sql.NullString
		if err := rows.Scan(&s.Document, &s.SectionTitle, &s.Page, &s.Importance, &refined); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		s.RefinedText = refined.String
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT run_id, collection, persona_role, job_task, document_count, sections_considered, sections_selected, created_at
		FROM runs ORDER BY run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		if err := rows.Scan(&run.RunID, &run.Collection, &run.PersonaRole, &run.JobTask,
			&run.DocumentCount, &run.SectionsConsidered, &run.SectionsSelected, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Stats returns aggregate counts over all recorded runs.
func (db *DB) Stats() (*RunStats, error) {
	stats := &RunStats{}
	err := db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(sections_selected), 0),
		       COUNT(DISTINCT persona_role),
		       COUNT(DISTINCT collection)
		FROM runs`,
	).Scan(&stats.TotalRuns, &stats.TotalSectionsKept, &stats.DistinctPersonas, &stats.DistinctCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}
