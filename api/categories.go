package api

import (
	"net/http"

	"github.com/garnizeh/trivia/internal/trivia"
	"github.com/garnizeh/trivia/pkg/models"
)

type CategoriesHandler struct {
	svc *trivia.Service
}

func NewCategoriesHandler(svc *trivia.Service) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

type listCategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

type categoryQuestionsResponse struct {
	Success        bool              `json:"success"`
	Category       string            `json:"category"`
	Questions      []models.Question `json:"questions"`
	TotalQuestions int64             `json:"total_questions"`
}

func (h *CategoriesHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, listCategoriesResponse{Success: true, Categories: cats}, http.StatusOK)
}

// CategoryQuestions handles /categories/{id}/questions. An unknown category
// is a 400, not a 404.
func (h *CategoriesHandler) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErrorBody(w, http.StatusBadRequest)
		return
	}

	typ, l, err := h.svc.CategoryQuestions(r.Context(), id, pageParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, categoryQuestionsResponse{
		Success:        true,
		Category:       typ,
		Questions:      l.Questions,
		TotalQuestions: l.TotalQuestions,
	}, http.StatusOK)
}
