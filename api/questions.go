package api

import (
	"net/http"

	"github.com/garnizeh/trivia/internal/trivia"
	"github.com/garnizeh/trivia/internal/validate"
	"github.com/garnizeh/trivia/pkg/models"
)

type QuestionsHandler struct {
	svc       *trivia.Service
	validator *validate.Validator
}

func NewQuestionsHandler(svc *trivia.Service, v *validate.Validator) *QuestionsHandler {
	return &QuestionsHandler{svc: svc, validator: v}
}

type listQuestionsResponse struct {
	Success        bool              `json:"success"`
	Questions      []models.Question `json:"questions"`
	TotalQuestions int64             `json:"total_questions"`
	Categories     map[int64]string  `json:"categories"`
}

type postQuestionResponse struct {
	Success        bool              `json:"success"`
	Created        *int64            `json:"created,omitempty"`
	Questions      []models.Question `json:"questions"`
	TotalQuestions int64             `json:"total_questions"`
}

type deleteQuestionResponse struct {
	Success        bool              `json:"success"`
	Deleted        int64             `json:"deleted"`
	Questions      []models.Question `json:"questions"`
	TotalQuestions int64             `json:"total_questions"`
}

// ListQuestions handles GET /questions?page=N.
func (h *QuestionsHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, listQuestionsResponse{
		Success:        true,
		Questions:      l.Questions,
		TotalQuestions: l.TotalQuestions,
		Categories:     l.Categories,
	}, http.StatusOK)
}

// PostQuestion handles POST /questions, which either searches or creates
// depending on the body.
func (h *QuestionsHandler) PostQuestion(w http.ResponseWriter, r *http.Request) {
	post, err := decodeQuestionPost(r.Context(), h.validator, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.svc.PostQuestion(r.Context(), pageParam(r), post)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, postQuestionResponse{
		Success:        true,
		Created:        res.Created,
		Questions:      res.Questions,
		TotalQuestions: res.TotalQuestions,
	}, http.StatusOK)
}

// DeleteQuestion handles DELETE /questions/{id}. Any failure is a 422.
func (h *QuestionsHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErrorBody(w, http.StatusUnprocessableEntity)
		return
	}

	l, err := h.svc.DeleteQuestion(r.Context(), id, pageParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, deleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      l.Questions,
		TotalQuestions: l.TotalQuestions,
	}, http.StatusOK)
}
