package sqlite

import (
	"io"
	"log/slog"

	"github.com/garnizeh/trivia/internal/db"
	"github.com/garnizeh/trivia/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.QuestionRepo = (*SQLiteRepo)(nil)
var _ repository.CategoryRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}
