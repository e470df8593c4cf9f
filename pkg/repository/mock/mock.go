package mock

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/garnizeh/trivia/pkg/models"
	"github.com/garnizeh/trivia/pkg/repository"
)

var (
	_ repository.QuestionRepo = (*QuestionRepo)(nil)
	_ repository.CategoryRepo = (*CategoryRepo)(nil)
)

// Test helpers and mocks
type Mocks struct {
	Questions  *QuestionRepo
	Categories *CategoryRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Questions:  &QuestionRepo{rows: map[int64]models.Question{}},
		Categories: &CategoryRepo{rows: map[int64]models.Category{}},
	}
}

// QuestionRepo keeps questions in memory. Setting an Err field makes the
// matching method fail with that error.
type QuestionRepo struct {
	mu     sync.Mutex
	rows   map[int64]models.Question
	nextID int64

	CreateErr error
	GetErr    error
	DeleteErr error
	ListErr   error
}

func (m *QuestionRepo) CreateQuestion(ctx context.Context, q *models.Question) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	if q == nil {
		return 0, errors.New("question is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	stored := *q
	stored.ID = m.nextID
	m.rows[stored.ID] = stored
	return stored.ID, nil
}

func (m *QuestionRepo) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (m *QuestionRepo) DeleteQuestion(ctx context.Context, id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *QuestionRepo) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return m.filter(func(models.Question) bool { return true })
}

func (m *QuestionRepo) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	term = strings.ToLower(term)
	return m.filter(func(q models.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	})
}

func (m *QuestionRepo) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]models.Question, error) {
	return m.filter(func(q models.Question) bool { return q.Category == categoryID })
}

func (m *QuestionRepo) CountQuestions(ctx context.Context) (int64, error) {
	if m.ListErr != nil {
		return 0, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), nil
}

func (m *QuestionRepo) filter(keep func(models.Question) bool) ([]models.Question, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Question
	for _, q := range m.rows {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type CategoryRepo struct {
	mu     sync.Mutex
	rows   map[int64]models.Category
	nextID int64

	ListErr error
}

func (m *CategoryRepo) CreateCategory(ctx context.Context, c *models.Category) (int64, error) {
	if c == nil {
		return 0, errors.New("category is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	stored := *c
	stored.ID = m.nextID
	m.rows[stored.ID] = stored
	return stored.ID, nil
}

func (m *CategoryRepo) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *CategoryRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Category, 0, len(m.rows))
	for _, c := range m.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
