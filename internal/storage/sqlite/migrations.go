package sqlite

import (
	"database/sql"
	"fmt"
)

// schema sets up the database. It runs on startup to ensure tables exist.
// Uniqueness is enforced on name_key columns holding strings.ToLower(name):
// SQLite's NOCASE only folds ASCII, so "Épinards" and "épinards" would differ.
const schema = `
CREATE TABLE IF NOT EXISTS recipes (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    name_key TEXT NOT NULL UNIQUE,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS recipe_ingredients (
    recipe_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    section TEXT NOT NULL,
    quantity TEXT NOT NULL,
    unit TEXT NOT NULL,
    PRIMARY KEY (recipe_id, position),
    FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS sections (
    name TEXT PRIMARY KEY,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS articles (
    section TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    name_key TEXT NOT NULL,
    PRIMARY KEY (section, position),
    UNIQUE (section, name_key),
    FOREIGN KEY (section) REFERENCES sections(name) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_recipe_id ON recipe_ingredients(recipe_id);
CREATE INDEX IF NOT EXISTS idx_articles_section ON articles(section);
`

// runMigrations executes the schema setup, then upgrades databases created
// before names were keyed.
func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return err
	}
	for _, m := range []struct{ table, index string }{
		{"recipes", "CREATE UNIQUE INDEX IF NOT EXISTS idx_recipes_name_key ON recipes(name_key)"},
		{"articles", "CREATE UNIQUE INDEX IF NOT EXISTS idx_articles_name_key ON articles(section, name_key)"},
	} {
		if err := addNameKey(db, m.table, m.index); err != nil {
			return fmt.Errorf("failed to add name keys to %s: %w", m.table, err)
		}
	}
	return nil
}

// addNameKey adds and backfills the name_key column when table lacks it.
func addNameKey(db *sql.DB, table, index string) error {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = 'name_key'", table).Scan(&n)
	if err != nil || n > 0 {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("ALTER TABLE " + table + " ADD COLUMN name_key TEXT NOT NULL DEFAULT ''"); err != nil {
		return err
	}

	rows, err := tx.Query("SELECT rowid, name FROM " + table)
	if err != nil {
		return err
	}
	keys := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return err
		}
		keys[id] = nameKey(name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for id, key := range keys {
		if _, err := tx.Exec("UPDATE "+table+" SET name_key = ? WHERE rowid = ?", key, id); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(index); err != nil {
		return err
	}
	return tx.Commit()
}
