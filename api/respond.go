package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/garnizeh/trivia/internal/trivia"
	"github.com/gorilla/mux"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, payload any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

func writeErrorBody(w http.ResponseWriter, code int) {
	writeJSON(w, errorResponse{Success: false, Error: code, Message: errorMessages[code]}, code)
}

// statusFor maps an error to one of the public status codes. Anything that
// is not one of the taxonomy sentinels lands on 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, trivia.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, trivia.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}

// writeError logs err and answers with the fixed body for its status. The
// detail in err never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)

	attrs := []any{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", code),
		slog.String("request_id", RequestID(r.Context())),
		slog.Any("err", err),
	}
	if isExpected(err) {
		logger.Info("request failed", attrs...)
	} else {
		logger.Error("request failed", attrs...)
	}

	writeErrorBody(w, code)
}

func isExpected(err error) bool {
	return errors.Is(err, trivia.ErrBadRequest) ||
		errors.Is(err, trivia.ErrNotFound) ||
		errors.Is(err, trivia.ErrUnprocessable)
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeErrorBody(w, http.StatusNotFound)
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeErrorBody(w, http.StatusMethodNotAllowed)
}

// pageParam reads ?page=, falling back to 1 when absent or not an integer.
// Values below 1 pass through and select an empty page.
func pageParam(r *http.Request) int {
	v := strings.TrimSpace(r.URL.Query().Get("page"))
	if v == "" {
		return 1
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 1
	}
	return n
}

// pathID parses the {id} route variable. Routes constrain it to digits, so
// the only failure left is overflow.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
