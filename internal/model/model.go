package model

// List is one user-editable list of problem titles.
// Questions holds the raw text, one entry per line.
type List struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Questions string `json:"questions"`
}

// ParsedList is the read-only snapshot of a List taken at compare time.
// Questions are canonical keys, deduplicated, in first-seen order.
type ParsedList struct {
	ID        string
	Name      string
	Questions []string
}

type ComparisonResult struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	UniqueQuestions []string `json:"uniqueQuestions"`
	TotalQuestions  int      `json:"totalQuestions"`
	UniqueCount     int      `json:"uniqueCount"`
}

type ComparisonStats struct {
	TotalLists                int      `json:"totalLists"`
	TotalUniqueQuestions      int      `json:"totalUniqueQuestions"`
	TotalQuestionsAcrossLists int      `json:"totalQuestionsAcrossLists"`
	SharedQuestions           int      `json:"sharedQuestions"`
	SharedQuestionsList       []string `json:"sharedQuestionsList"`
}
