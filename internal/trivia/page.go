package trivia

// PageSize is the fixed number of items on one page.
const PageSize = 10

// Paginate returns the 1-based page of items. A page past the end, or a
// page below 1, yields an empty non-nil slice.
func Paginate[T any](items []T, page int) []T {
	// compare page counts before multiplying so a huge page cannot overflow
	if page < 1 || page-1 >= (len(items)+PageSize-1)/PageSize {
		return []T{}
	}

	start := (page - 1) * PageSize
	end := min(start+PageSize, len(items))

	return items[start:end]
}
