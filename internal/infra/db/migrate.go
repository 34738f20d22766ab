package db

import "database/sql"

// MigrateUp creates the articles table and its indexes if they do not exist.
// The uuid column is the stable external identifier; it is generated by the
// repository at insert time and never updated.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    uuid     UUID PRIMARY KEY,
    title    TEXT NOT NULL,
    body     TEXT NOT NULL DEFAULT '',
    langcode VARCHAR(12) NOT NULL DEFAULT '',
    created  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY created DESC is used by every list query
		`CREATE INDEX IF NOT EXISTS idx_articles_created ON articles(created DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}
	return nil
}
