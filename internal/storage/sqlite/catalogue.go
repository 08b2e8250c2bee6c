package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/shoplist/internal/models"
)

var errEmptySection = errors.New("section name is empty")

// GetCatalogue returns every section with its articles, in stored order.
func (s *SQLiteStore) GetCatalogue(ctx context.Context) (models.Catalogue, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM sections ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to get sections: %w", err)
	}
	defer rows.Close()

	var cat models.Catalogue
	index := make(map[string]int)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		index[name] = len(cat)
		cat = append(cat, models.Section{Name: name, Articles: []string{}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sections: %w", err)
	}
	rows.Close()

	articleRows, err := s.db.QueryContext(ctx, "SELECT section, name FROM articles ORDER BY section, position")
	if err != nil {
		return nil, fmt.Errorf("failed to get articles: %w", err)
	}
	defer articleRows.Close()

	for articleRows.Next() {
		var section, name string
		if err := articleRows.Scan(&section, &name); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		if i, ok := index[section]; ok {
			cat[i].Articles = append(cat[i].Articles, name)
		}
	}
	if err := articleRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return cat, nil
}

// SaveCatalogue replaces the stored catalogue in a single transaction.
func (s *SQLiteStore) SaveCatalogue(ctx context.Context, cat models.Catalogue) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := writeCatalogue(ctx, tx, cat); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// writeCatalogue replaces sections and articles within tx.
// Article order is stored as given; callers keep it sorted.
func writeCatalogue(ctx context.Context, tx *sql.Tx, cat models.Catalogue) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM articles"); err != nil {
		return fmt.Errorf("failed to clear articles: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sections"); err != nil {
		return fmt.Errorf("failed to clear sections: %w", err)
	}

	for i, section := range cat {
		if section.Name == "" {
			return errEmptySection
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO sections (name, position) VALUES (?, ?)",
			section.Name, i,
		); err != nil {
			return fmt.Errorf("failed to insert section %q: %w", section.Name, err)
		}

		for j, article := range section.Articles {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO articles (section, position, name, name_key) VALUES (?, ?, ?, ?)",
				section.Name, j, article, nameKey(article),
			); err != nil {
				return fmt.Errorf("failed to insert article %q: %w", article, err)
			}
		}
	}
	return nil
}
