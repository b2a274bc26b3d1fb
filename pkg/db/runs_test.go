package db

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return database
}

func TestInsertRunRoundTrip(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	run := RunRecord{
		Collection:         "trip-planning",
		PersonaRole:        "Travel Planner",
		JobTask:            "Plan a 4-day trip for college friends",
		DocumentCount:      7,
		SectionsConsidered: 42,
		SectionsSelected:   5,
	}
	sections := []SectionRecord{
		{Document: "Things to Do", SectionTitle: "Coastal Adventures", Page: 2, Importance: 18, RefinedText: "The beach tour is great."},
		{Document: "Cities Guide", SectionTitle: "Nightlife", Page: 5, Importance: 12, RefinedText: "Clubs stay open late."},
	}

	runID, err := database.InsertRun(run, sections)
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("InsertRun() returned run ID 0")
	}

	loaded, err := database.GetRun(runID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if loaded.Collection != run.Collection {
		t.Errorf("collection = %q, want %q", loaded.Collection, run.Collection)
	}
	if loaded.PersonaRole != run.PersonaRole {
		t.Errorf("persona = %q, want %q", loaded.PersonaRole, run.PersonaRole)
	}
	if loaded.SectionsConsidered != 42 || loaded.SectionsSelected != 5 {
		t.Errorf("counts = (%d, %d), want (42, 5)", loaded.SectionsConsidered, loaded.SectionsSelected)
	}

	gotSections, err := database.GetRunSections(runID)
	if err != nil {
		t.Fatalf("GetRunSections() error = %v", err)
	}
	if len(gotSections) != 2 {
		t.Fatalf("GetRunSections() returned %d sections, want 2", len(gotSections))
	}
	if gotSections[0].SectionTitle != "Coastal Adventures" {
		t.Errorf("first section title = %q, want %q", gotSections[0].SectionTitle, "Coastal Adventures")
	}
	if gotSections[1].RefinedText != "Clubs stay open late." {
		t.Errorf("second refined text = %q", gotSections[1].RefinedText)
	}
}

func TestGetRunNotFound(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	if _, err := database.GetRun(999); err == nil {
		t.Error("GetRun(999) error = nil, want not-found error")
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	for i, name := range []string{"first", "second", "third"} {
		_, err := database.InsertRun(RunRecord{
			Collection:  name,
			PersonaRole: "Travel Planner",
			JobTask:     "task",
		}, nil)
		if err != nil {
			t.Fatalf("InsertRun(%d) error = %v", i, err)
		}
	}

	runs, err := database.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns(2) returned %d runs, want 2", len(runs))
	}
	if runs[0].Collection != "third" || runs[1].Collection != "second" {
		t.Errorf("order = [%q, %q], want newest first", runs[0].Collection, runs[1].Collection)
	}
}

func TestStats(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	stats, err := database.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty db error = %v", err)
	}
	if stats.TotalRuns != 0 {
		t.Errorf("empty db TotalRuns = %d, want 0", stats.TotalRuns)
	}

	_, err = database.InsertRun(RunRecord{Collection: "a", PersonaRole: "Travel Planner", JobTask: "t", SectionsSelected: 5}, nil)
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	_, err = database.InsertRun(RunRecord{Collection: "b", PersonaRole: "HR professional", JobTask: "t", SectionsSelected: 3}, nil)
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	stats, err = database.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalRuns != 2 {
		t.Errorf("TotalRuns = %d, want 2", stats.TotalRuns)
	}
	if stats.TotalSectionsKept != 8 {
		t.Errorf("TotalSectionsKept = %d, want 8", stats.TotalSectionsKept)
	}
	if stats.DistinctPersonas != 2 {
		t.Errorf("DistinctPersonas = %d, want 2", stats.DistinctPersonas)
	}
}
