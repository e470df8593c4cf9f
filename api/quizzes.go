package api

import (
	"net/http"

	"github.com/garnizeh/trivia/internal/trivia"
	"github.com/garnizeh/trivia/internal/validate"
	"github.com/garnizeh/trivia/pkg/models"
)

type QuizzesHandler struct {
	svc       *trivia.Service
	validator *validate.Validator
}

func NewQuizzesHandler(svc *trivia.Service, v *validate.Validator) *QuizzesHandler {
	return &QuizzesHandler{svc: svc, validator: v}
}

// Question is omitted once the quiz has nothing left to serve.
type quizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question,omitempty"`
}

func (h *QuizzesHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	req, err := decodeQuizRequest(r.Context(), h.validator, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	q, err := h.svc.NextQuizQuestion(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, quizResponse{Success: true, Question: q}, http.StatusOK)
}
