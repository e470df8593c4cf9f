package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/garnizeh/trivia/internal/trivia"
	"github.com/garnizeh/trivia/internal/validate"
)

const maxBodySize = 64 * 1024

// flexInt accepts a JSON integer or a string holding one. Browsers send
// category ids taken from object keys, which are strings.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if uq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(uq)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || fl != math.Trunc(fl) {
			return fmt.Errorf("not an integer: %s", b)
		}
		n = int64(fl)
	}

	*f = flexInt(n)
	return nil
}

type createQuestionBody struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   flexInt `json:"category"`
	Difficulty flexInt `json:"difficulty"`
}

type quizBody struct {
	PreviousQuestions []flexInt `json:"previous_questions"`
	QuizCategory      struct {
		ID flexInt `json:"id"`
	} `json:"quiz_category"`
}

func badRequest(problems ...string) error {
	return &trivia.ValidationError{Kind: trivia.ErrBadRequest, Problems: problems}
}

func unprocessable(problems ...string) error {
	return &trivia.ValidationError{Kind: trivia.ErrUnprocessable, Problems: problems}
}

// readObject reads a JSON object body. Anything else, an empty body included,
// is a bad request.
func readObject(r *http.Request) ([]byte, map[string]json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return nil, nil, badRequest(fmt.Sprintf("read body: %v", err))
	}
	if len(body) > maxBodySize {
		return nil, nil, badRequest("body too large")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, nil, badRequest("body must be a JSON object")
	}
	return body, fields, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeQuestionPost picks the variant from the payload shape: a non-empty
// searchTerm string means Search, anything else is a NewQuestion.
func decodeQuestionPost(ctx context.Context, v *validate.Validator, r *http.Request) (trivia.QuestionPost, error) {
	body, fields, err := readObject(r)
	if err != nil {
		return nil, err
	}

	if raw, ok := fields["searchTerm"]; ok && !isNull(raw) {
		var term string
		if err := json.Unmarshal(raw, &term); err != nil {
			return nil, unprocessable("searchTerm must be a string")
		}
		if term != "" {
			return trivia.Search{Term: term}, nil
		}
	}

	problems, err := v.Validate(ctx, validate.CreateQuestion, body)
	if err != nil {
		return nil, fmt.Errorf("validate create question: %w", err)
	}
	if len(problems) > 0 {
		return nil, unprocessable(problems...)
	}

	var cb createQuestionBody
	if err := json.Unmarshal(body, &cb); err != nil {
		return nil, unprocessable(err.Error())
	}

	return trivia.NewQuestion{
		Question:   cb.Question,
		Answer:     cb.Answer,
		Category:   int64(cb.Category),
		Difficulty: int64(cb.Difficulty),
	}, nil
}

func decodeQuizRequest(ctx context.Context, v *validate.Validator, r *http.Request) (trivia.QuizRequest, error) {
	body, _, err := readObject(r)
	if err != nil {
		return trivia.QuizRequest{}, err
	}

	problems, err := v.Validate(ctx, validate.Quiz, body)
	if err != nil {
		return trivia.QuizRequest{}, fmt.Errorf("validate quiz: %w", err)
	}
	if len(problems) > 0 {
		return trivia.QuizRequest{}, badRequest(problems...)
	}

	var qb quizBody
	if err := json.Unmarshal(body, &qb); err != nil {
		return trivia.QuizRequest{}, badRequest(err.Error())
	}

	previous := make([]int64, len(qb.PreviousQuestions))
	for i, id := range qb.PreviousQuestions {
		previous[i] = int64(id)
	}

	return trivia.QuizRequest{
		PreviousQuestions: previous,
		CategoryID:        int64(qb.QuizCategory.ID),
	}, nil
}
