package trivia

import "github.com/garnizeh/trivia/pkg/models"

// AllCategories is the quiz category id that selects from every question.
const AllCategories int64 = 0

// QuizRequest is a decoded POST /quizzes body.
type QuizRequest struct {
	PreviousQuestions []int64
	CategoryID        int64
}

// PickUnused draws uniformly from the pool members whose ids are not in
// previous. ok is false when nothing is left, including for an empty pool.
// intn must return a value in [0, n).
func PickUnused(pool []models.Question, previous []int64, intn func(n int) int) (q models.Question, ok bool) {
	used := make(map[int64]struct{}, len(previous))
	for _, id := range previous {
		used[id] = struct{}{}
	}

	eligible := make([]models.Question, 0, len(pool))
	for _, c := range pool {
		if _, seen := used[c.ID]; !seen {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return models.Question{}, false
	}

	return eligible[intn(len(eligible))], true
}
