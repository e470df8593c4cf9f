package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type Category struct {
	ID   int64  `json:"id" db:"id"`
	Type string `json:"type" db:"type"`
}

// Question.Category is a soft reference to Category.ID; nothing checks that the row exists.
type Question struct {
	ID         int64  `json:"id" db:"id"`
	Question   string `json:"question" db:"question"`
	Answer     string `json:"answer" db:"answer"`
	Category   int64  `json:"category" db:"category"`
	Difficulty int64  `json:"difficulty" db:"difficulty"`
}

// CategoryMap builds the id -> type mapping returned by the listing endpoints.
func CategoryMap(cats []Category) map[int64]string {
	out := make(map[int64]string, len(cats))
	for _, c := range cats {
		out[c.ID] = c.Type
	}
	return out
}
