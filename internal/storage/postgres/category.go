package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"promisync/internal/domain"
)

type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// UpsertBatch inserts or updates categories in a single statement.
// Later duplicates of a code within the batch win.
func (s *CategoryStore) UpsertBatch(ctx context.Context, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}

	seen := make(map[string]domain.Category, len(categories))
	order := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, ok := seen[c.Code]; !ok {
			order = append(order, c.Code)
		}
		seen[c.Code] = c
	}

	var query strings.Builder
	query.WriteString(`INSERT INTO categories (code, name, parent_code) VALUES `)

	args := make([]interface{}, 0, len(order)*3)
	for i, code := range order {
		if i > 0 {
			query.WriteString(", ")
		}
		c := seen[code]
		fmt.Fprintf(&query, "($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, c.Code, c.Name, c.ParentCode)
	}

	query.WriteString(` ON CONFLICT (code) DO UPDATE SET
		name = EXCLUDED.name,
		parent_code = EXCLUDED.parent_code,
		updated_at = now()`)

	if _, err := s.db.ExecContext(ctx, query.String(), args...); err != nil {
		return fmt.Errorf("upsert categories: %w", err)
	}
	return nil
}
