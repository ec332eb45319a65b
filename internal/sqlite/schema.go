package sqlite

// schemaDDL creates the quick_actions table on first attach. The table is
// kept across runs; card IDs are never reused (AUTOINCREMENT). Timestamps
// are stored as RFC3339 UTC text.
const schemaDDL = `CREATE TABLE IF NOT EXISTS quick_actions (
    card_id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
