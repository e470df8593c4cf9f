package trivia

// QuestionPost is the decoded body of POST /questions: either a Search or a
// NewQuestion, never both.
type QuestionPost interface {
	isQuestionPost()
}

type Search struct {
	Term string
}

type NewQuestion struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int64
}

func (Search) isQuestionPost()      {}
func (NewQuestion) isQuestionPost() {}
