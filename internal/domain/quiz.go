package domain

// QuizOption is a single answer choice mapped to the skin type it suggests
type QuizOption struct {
	ID    string   `json:"id" yaml:"id"`
	Text  string   `json:"text" yaml:"text"`
	Value SkinType `json:"value" yaml:"value"`
}

// QuizQuestion is one question of the skin type quiz
type QuizQuestion struct {
	ID       string       `json:"id" yaml:"id"`
	Question string       `json:"q" yaml:"q"`
	Options  []QuizOption `json:"options" yaml:"options"`
}

// QuizAnswers maps question IDs to the chosen option ID
type QuizAnswers map[string]string

// QuizScoreRequest is the body of a quiz scoring request
type QuizScoreRequest struct {
	Answers QuizAnswers `json:"answers"`
}

// QuizScoreResponse carries the derived skin type and the per-type tally
type QuizScoreResponse struct {
	SkinType SkinType         `json:"skinType"`
	Tally    map[SkinType]int `json:"tally"`
}
