package trivia

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/garnizeh/trivia/pkg/models"
	"github.com/garnizeh/trivia/pkg/repository"
)

// Service holds the stores and collaborators every request handler works
// with. Build one at startup and share it; it has no mutable state of its own.
type Service struct {
	questions  repository.QuestionRepo
	categories repository.CategoryRepo
	logger     *slog.Logger
	intn       func(n int) int
}

type Option func(*Service)

// WithRandom replaces the random source used by the quiz selector.
func WithRandom(intn func(n int) int) Option {
	return func(s *Service) {
		if intn != nil {
			s.intn = intn
		}
	}
}

func NewService(qr repository.QuestionRepo, cr repository.CategoryRepo, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{questions: qr, categories: cr, logger: logger, intn: rand.IntN}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Listing is one page of questions plus the totals reported alongside it.
// Categories is only filled by ListQuestions.
type Listing struct {
	Questions      []models.Question
	TotalQuestions int64
	Categories     map[int64]string
}

// PostResult is the outcome of a QuestionPost. Created is nil for a search.
type PostResult struct {
	Created *int64
	Listing
}

// ListCategories returns the id -> type mapping. An empty table is ErrNotFound.
func (s *Service) ListCategories(ctx context.Context) (map[int64]string, error) {
	cats, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(cats) == 0 {
		return nil, ErrNotFound
	}

	return models.CategoryMap(cats), nil
}

// ListQuestions returns the requested page of all questions. An empty page,
// including one from an empty table, is ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (*Listing, error) {
	all, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	current := Paginate(all, page)
	if len(current) == 0 {
		return nil, fmt.Errorf("questions page %d: %w", page, ErrNotFound)
	}

	cats, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return &Listing{
		Questions:      current,
		TotalQuestions: int64(len(all)),
		Categories:     models.CategoryMap(cats),
	}, nil
}

// PostQuestion runs a search or a create depending on the variant.
func (s *Service) PostQuestion(ctx context.Context, page int, post QuestionPost) (*PostResult, error) {
	switch p := post.(type) {
	case Search:
		l, err := s.search(ctx, page, p.Term)
		if err != nil {
			return nil, err
		}
		return &PostResult{Listing: *l}, nil
	case NewQuestion:
		return s.create(ctx, page, p)
	default:
		return nil, fmt.Errorf("unsupported post %T: %w", post, ErrUnprocessable)
	}
}

// search never reports ErrNotFound: zero matches is a successful, empty listing.
func (s *Service) search(ctx context.Context, page int, term string) (*Listing, error) {
	matches, err := s.questions.SearchQuestions(ctx, term)
	if err != nil {
		return nil, unprocessable(fmt.Errorf("search %q: %w", term, err))
	}

	return &Listing{
		Questions:      Paginate(matches, page),
		TotalQuestions: int64(len(matches)),
	}, nil
}

func (s *Service) create(ctx context.Context, page int, nq NewQuestion) (*PostResult, error) {
	id, err := s.questions.CreateQuestion(ctx, &models.Question{
		Question:   nq.Question,
		Answer:     nq.Answer,
		Category:   nq.Category,
		Difficulty: nq.Difficulty,
	})
	if err != nil {
		return nil, unprocessable(err)
	}
	s.logger.Info("question created", slog.Int64("id", id), slog.Int64("category", nq.Category))

	l, err := s.relist(ctx, page)
	if err != nil {
		return nil, unprocessable(err)
	}

	return &PostResult{Created: &id, Listing: *l}, nil
}

// DeleteQuestion removes a question and returns the listing that follows.
// Every failure, a missing row included, is ErrUnprocessable.
func (s *Service) DeleteQuestion(ctx context.Context, id int64, page int) (*Listing, error) {
	q, err := s.questions.GetQuestion(ctx, id)
	if err != nil {
		return nil, unprocessable(fmt.Errorf("get question %d: %w", id, err))
	}
	if q == nil {
		return nil, unprocessable(fmt.Errorf("question %d: %w", id, ErrNotFound))
	}

	if err := s.questions.DeleteQuestion(ctx, q.ID); err != nil {
		return nil, unprocessable(err)
	}
	s.logger.Info("question deleted", slog.Int64("id", q.ID))

	l, err := s.relist(ctx, page)
	if err != nil {
		return nil, unprocessable(err)
	}

	return l, nil
}

// relist is the page shown after a write. An empty page is not an error here.
func (s *Service) relist(ctx context.Context, page int) (*Listing, error) {
	all, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return &Listing{
		Questions:      Paginate(all, page),
		TotalQuestions: int64(len(all)),
	}, nil
}

// CategoryQuestions returns the category's type and its page of questions.
// TotalQuestions counts the whole table, not just the category. An unknown
// category is ErrBadRequest.
func (s *Service) CategoryQuestions(ctx context.Context, categoryID int64, page int) (string, *Listing, error) {
	cat, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return "", nil, fmt.Errorf("get category %d: %w", categoryID, err)
	}
	if cat == nil {
		return "", nil, fmt.Errorf("category %d: %w", categoryID, ErrBadRequest)
	}

	inCategory, err := s.questions.ListQuestionsByCategory(ctx, cat.ID)
	if err != nil {
		return "", nil, fmt.Errorf("list category %d: %w", cat.ID, err)
	}

	total, err := s.questions.CountQuestions(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("count questions: %w", err)
	}

	return cat.Type, &Listing{
		Questions:      Paginate(inCategory, page),
		TotalQuestions: total,
	}, nil
}

// NextQuizQuestion picks a question that has not been served yet. A nil
// question with a nil error means the quiz is exhausted.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (*models.Question, error) {
	var (
		pool []models.Question
		err  error
	)
	if req.CategoryID == AllCategories {
		pool, err = s.questions.ListQuestions(ctx)
	} else {
		pool, err = s.questions.ListQuestionsByCategory(ctx, req.CategoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("quiz pool for category %d: %w", req.CategoryID, err)
	}

	q, ok := PickUnused(pool, req.PreviousQuestions, s.intn)
	if !ok {
		s.logger.Debug("quiz exhausted", slog.Int64("category", req.CategoryID), slog.Int("previous", len(req.PreviousQuestions)))
		return nil, nil
	}
	return &q, nil
}
