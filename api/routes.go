package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/garnizeh/trivia/internal/db"
	"github.com/garnizeh/trivia/internal/repository/sqlite"
	"github.com/garnizeh/trivia/internal/trivia"
	"github.com/garnizeh/trivia/internal/validate"
	"github.com/gorilla/mux"
)

// SetupRoutes wires the SQLite repository, the service and the validator
// behind the HTTP routes.
func SetupRoutes(version, buildTime string, d *db.DB, log *slog.Logger, opts ...trivia.Option) (http.Handler, error) {
	if d == nil {
		return nil, errors.New("setup routes: database is nil")
	}
	SetLogger(log)

	repo := sqlite.New(d, log)
	v, err := validate.New()
	if err != nil {
		return nil, fmt.Errorf("load request schemas: %w", err)
	}
	svc := trivia.NewService(repo, repo, log, opts...)

	return NewRouter(svc, v, NewSystemHandler(d), version, buildTime), nil
}

// NewRouter builds the route table and the middleware chain around it.
// Middleware wraps the router rather than being registered with r.Use, so
// preflight and unmatched requests pass through it too.
func NewRouter(svc *trivia.Service, v *validate.Validator, systemHandler *SystemHandler, version, buildTime string) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	questionsHandler := NewQuestionsHandler(svc, v)
	categoriesHandler := NewCategoriesHandler(svc)
	quizzesHandler := NewQuizzesHandler(svc, v)

	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	r.HandleFunc("/categories", categoriesHandler.ListCategories).Methods("GET")
	r.HandleFunc("/categories/{id:[0-9]+}/questions", categoriesHandler.CategoryQuestions).Methods("GET", "POST")

	r.HandleFunc("/questions", questionsHandler.ListQuestions).Methods("GET")
	r.HandleFunc("/questions", questionsHandler.PostQuestion).Methods("POST")
	r.HandleFunc("/questions/{id:[0-9]+}", questionsHandler.DeleteQuestion).Methods("DELETE")

	r.HandleFunc("/quizzes", quizzesHandler.NextQuestion).Methods("POST")

	var h http.Handler = r
	h = RecoveryMiddleware(h)
	h = CORSMiddleware(h)
	h = LoggingMiddleware(h)
	h = RequestIDMiddleware(h)
	return h
}
