package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/garnizeh/trivia/internal/db"
	"github.com/garnizeh/trivia/pkg/models"
)

const questionColumns = `id, question, answer, category, difficulty`

func (r *SQLiteRepo) CreateQuestion(ctx context.Context, q *models.Question) (int64, error) {
	if q == nil {
		return 0, fmt.Errorf("question is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)`, q.Question, q.Answer, q.Category, q.Difficulty)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("question id: %w", err)
	}

	r.logger.Debug("question created", slog.Int64("id", id))
	return id, nil
}

func (r *SQLiteRepo) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = ?`, id)
	var q models.Question
	if err := row.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &q, nil
}

func (r *SQLiteRepo) DeleteQuestion(ctx context.Context, id int64) error {
	if _, err := r.conn.Exec(ctx, `DELETE FROM questions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}

	r.logger.Debug("question deleted", slog.Int64("id", id))
	return nil
}

func (r *SQLiteRepo) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return r.queryQuestions(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
}

// SearchQuestions matches term as a literal, case-insensitive substring of the
// question text. Case folding covers non-ASCII letters too.
func (r *SQLiteRepo) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	return r.queryQuestions(ctx, `SELECT `+questionColumns+` FROM questions WHERE `+db.ContainsFold+`(question, ?) = 1 ORDER BY id`, term)
}

func (r *SQLiteRepo) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]models.Question, error) {
	return r.queryQuestions(ctx, `SELECT `+questionColumns+` FROM questions WHERE category = ? ORDER BY id`, categoryID)
}

func (r *SQLiteRepo) CountQuestions(ctx context.Context) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM questions`)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return cnt, nil
}

func (r *SQLiteRepo) queryQuestions(ctx context.Context, query string, args ...any) ([]models.Question, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}

		out = append(out, q)
	}

	return out, rows.Err()
}
