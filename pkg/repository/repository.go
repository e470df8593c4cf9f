package repository

import (
	"context"

	"github.com/garnizeh/trivia/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
// Lookups by id return (nil, nil) when the row does not exist.

type QuestionRepo interface {
	CreateQuestion(ctx context.Context, q *models.Question) (int64, error)
	GetQuestion(ctx context.Context, id int64) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
	ListQuestions(ctx context.Context) ([]models.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]models.Question, error)
	CountQuestions(ctx context.Context) (int64, error)
}

type CategoryRepo interface {
	CreateCategory(ctx context.Context, c *models.Category) (int64, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}
