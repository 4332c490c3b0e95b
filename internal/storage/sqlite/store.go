package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS groups (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT NOT NULL UNIQUE,
	description  TEXT NOT NULL DEFAULT '',
	color        TEXT NOT NULL DEFAULT '#3498db',
	date_created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS articles (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	file_path  TEXT NOT NULL UNIQUE,
	group_id   INTEGER REFERENCES groups(id) ON DELETE SET NULL,
	pages      INTEGER NOT NULL DEFAULT 0,
	is_read    INTEGER NOT NULL DEFAULT 0,
	is_indexed INTEGER NOT NULL DEFAULT 0,
	date_added TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	date_read  TIMESTAMP,
	file_size  INTEGER NOT NULL DEFAULT 0,
	keywords   TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS article_index (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	article_id  INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
	page_number INTEGER NOT NULL,
	content     TEXT NOT NULL DEFAULT '',
	UNIQUE(article_id, page_number)
);

CREATE INDEX IF NOT EXISTS idx_articles_group ON articles(group_id);
CREATE INDEX IF NOT EXISTS idx_article_index_article ON article_index(article_id);
`

// Open connects to the catalog database and initializes the schema. The
// returned handle is long-lived and shared by all stores; each operation
// commits independently.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return db, nil
}
