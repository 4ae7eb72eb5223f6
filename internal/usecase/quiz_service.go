package usecase

import (
	_ "embed"
	"fmt"

	"github.com/safeglow/backend/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed quiz_questions.yaml
var defaultQuizYAML []byte

// QuizService scores the skin type questionnaire
type QuizService struct {
	questions []domain.QuizQuestion
	index     map[string]map[string]domain.SkinType
}

// NewQuizService creates a quiz service from the embedded question bank
func NewQuizService() (*QuizService, error) {
	return NewQuizServiceFromYAML(defaultQuizYAML)
}

// NewQuizServiceFromYAML creates a quiz service from a YAML question bank
func NewQuizServiceFromYAML(data []byte) (*QuizService, error) {
	var questions []domain.QuizQuestion
	if err := yaml.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse quiz questions: %w", err)
	}

	index := make(map[string]map[string]domain.SkinType, len(questions))
	for _, q := range questions {
		if q.ID == "" || len(q.Options) == 0 {
			return nil, fmt.Errorf("quiz question %q has no id or options", q.Question)
		}
		if _, dup := index[q.ID]; dup {
			return nil, fmt.Errorf("duplicate quiz question id %q", q.ID)
		}

		options := make(map[string]domain.SkinType, len(q.Options))
		for _, opt := range q.Options {
			if !opt.Value.IsKnown() {
				return nil, fmt.Errorf("quiz question %q option %q has unknown skin type %q", q.ID, opt.ID, opt.Value)
			}
			options[opt.ID] = opt.Value
		}
		index[q.ID] = options
	}

	return &QuizService{questions: questions, index: index}, nil
}

// Questions returns the question bank in display order
func (s *QuizService) Questions() []domain.QuizQuestion {
	return s.questions
}

// Score tallies the skin type behind each chosen option. The most frequent
// type wins; ties go to the type that appears first in question order.
func (s *QuizService) Score(answers domain.QuizAnswers) (*domain.QuizScoreResponse, error) {
	for qid, optionID := range answers {
		options, ok := s.index[qid]
		if !ok {
			return nil, fmt.Errorf("%w: unknown question %q", domain.ErrInvalidRequest, qid)
		}
		if _, ok := options[optionID]; !ok {
			return nil, fmt.Errorf("%w: unknown option %q for question %q", domain.ErrInvalidRequest, optionID, qid)
		}
	}

	values := make([]domain.SkinType, 0, len(s.questions))
	for _, q := range s.questions {
		optionID, ok := answers[q.ID]
		if !ok {
			return nil, fmt.Errorf("%w: missing answer for %q", domain.ErrIncompleteQuiz, q.ID)
		}
		values = append(values, s.index[q.ID][optionID])
	}

	skinType, tally := TopSkinType(values)
	return &domain.QuizScoreResponse{SkinType: skinType, Tally: tally}, nil
}

// TopSkinType returns the most frequent value and the full tally. Ties go to
// the value seen first; an empty input yields normal.
func TopSkinType(values []domain.SkinType) (domain.SkinType, map[domain.SkinType]int) {
	tally := make(map[domain.SkinType]int)
	var order []domain.SkinType

	for _, v := range values {
		if tally[v] == 0 {
			order = append(order, v)
		}
		tally[v]++
	}

	top := domain.SkinTypeNormal
	best := 0
	for _, v := range order {
		if tally[v] > best {
			top = v
			best = tally[v]
		}
	}

	return top, tally
}
