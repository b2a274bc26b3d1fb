package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per processed collection
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    collection TEXT NOT NULL,
    persona_role TEXT NOT NULL,
    job_task TEXT NOT NULL,
    document_count INTEGER NOT NULL DEFAULT 0,
    sections_considered INTEGER NOT NULL DEFAULT 0,
    sections_selected INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_collection ON runs(collection);
CREATE INDEX IF NOT EXISTS idx_runs_persona ON runs(persona_role);

-- Selected sections per run
CREATE TABLE IF NOT EXISTS run_sections (
    section_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    document TEXT NOT NULL,
    section_title TEXT NOT NULL,
    page INTEGER NOT NULL,
    importance REAL NOT NULL,
    refined_text TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_sections_run ON run_sections(run_id);
`
