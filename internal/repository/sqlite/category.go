package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/garnizeh/trivia/pkg/models"
)

func (r *SQLiteRepo) CreateCategory(ctx context.Context, c *models.Category) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("category is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO categories (type) VALUES (?)`, c.Type)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = ?`, id)
	var c models.Category
	if err := row.Scan(&c.ID, &c.Type); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &c, nil
}

func (r *SQLiteRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
