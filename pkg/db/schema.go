package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs table: one row per completed scrape run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    sitemap_url TEXT NOT NULL,
    url_count INTEGER NOT NULL,
    success_count INTEGER NOT NULL,
    failed_count INTEGER NOT NULL,
    elapsed_seconds REAL NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Records table: extracted fields, one row per successfully scraped page
CREATE TABLE IF NOT EXISTS records (
    record_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    url TEXT NOT NULL,
    page_name TEXT,
    model TEXT,
    year INTEGER,
    power_hp REAL,
    power_kw REAL,
    torque TEXT,
    displacement TEXT,
    wet_weight_kg REAL,
    wet_weight_lb REAL,
    dry_weight_kg REAL,
    dry_weight_lb REAL,
    power_weight_ratio REAL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_records_run ON records(run_id);
CREATE INDEX IF NOT EXISTS idx_records_url ON records(url);
CREATE INDEX IF NOT EXISTS idx_records_model ON records(model);
`
