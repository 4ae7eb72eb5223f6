package usecase

import (
	"errors"
	"testing"

	"github.com/safeglow/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answerAll picks the option with the given skin type value for every question where one exists,
// falling back to the first option
func answerAll(t *testing.T, svc *QuizService, prefer domain.SkinType) domain.QuizAnswers {
	t.Helper()
	answers := domain.QuizAnswers{}
	for _, q := range svc.Questions() {
		answers[q.ID] = q.Options[0].ID
		for _, opt := range q.Options {
			if opt.Value == prefer {
				answers[q.ID] = opt.ID
				break
			}
		}
	}
	return answers
}

func TestNewQuizService_EmbeddedBank(t *testing.T) {
	svc, err := NewQuizService()
	require.NoError(t, err)

	questions := svc.Questions()
	require.Len(t, questions, 10)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "How does your skin feel a few hours after washing?", questions[0].Question)
	require.Len(t, questions[0].Options, 4)
	assert.Equal(t, "Dry in some places, oily in others", questions[0].Options[3].Text)
	assert.Equal(t, domain.SkinTypeCombination, questions[0].Options[3].Value)
}

func TestNewQuizServiceFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "- id: [q1"},
		{"missing options", "- id: q1\n  q: Anything?\n"},
		{"unknown skin type", "- id: q1\n  q: X?\n  options:\n    - {id: a, text: A, value: greasy}\n"},
		{"duplicate ids", "- id: q1\n  q: X?\n  options:\n    - {id: a, text: A, value: dry}\n- id: q1\n  q: Y?\n  options:\n    - {id: a, text: A, value: oily}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuizServiceFromYAML([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestQuizScore(t *testing.T) {
	svc, err := NewQuizService()
	require.NoError(t, err)

	t.Run("all oily answers", func(t *testing.T) {
		resp, err := svc.Score(answerAll(t, svc, domain.SkinTypeOily))
		require.NoError(t, err)
		assert.Equal(t, domain.SkinTypeOily, resp.SkinType)
		// q7 has no oily option, so its first option (sensitive) is used
		assert.Equal(t, 9, resp.Tally[domain.SkinTypeOily])
		assert.Equal(t, 1, resp.Tally[domain.SkinTypeSensitive])
	})

	t.Run("majority beats minority", func(t *testing.T) {
		answers := answerAll(t, svc, domain.SkinTypeNormal)
		answers["q3"] = "a"
		answers["q7"] = "a"
		answers["q9"] = "a"
		resp, err := svc.Score(answers)
		require.NoError(t, err)
		// six normal, three sensitive, one dry (q4 has no normal option)
		assert.Equal(t, domain.SkinTypeNormal, resp.SkinType)
		assert.Equal(t, 6, resp.Tally[domain.SkinTypeNormal])
		assert.Equal(t, 3, resp.Tally[domain.SkinTypeSensitive])
		assert.Equal(t, 1, resp.Tally[domain.SkinTypeDry])
	})

	t.Run("incomplete answers", func(t *testing.T) {
		answers := answerAll(t, svc, domain.SkinTypeDry)
		delete(answers, "q10")
		_, err := svc.Score(answers)
		assert.True(t, errors.Is(err, domain.ErrIncompleteQuiz))
	})

	t.Run("unknown question", func(t *testing.T) {
		answers := answerAll(t, svc, domain.SkinTypeDry)
		answers["q99"] = "a"
		_, err := svc.Score(answers)
		assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	})

	t.Run("unknown option", func(t *testing.T) {
		answers := answerAll(t, svc, domain.SkinTypeDry)
		answers["q2"] = "z"
		_, err := svc.Score(answers)
		assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	})
}

func TestTopSkinType(t *testing.T) {
	tests := []struct {
		name   string
		values []domain.SkinType
		want   domain.SkinType
	}{
		{"empty defaults to normal", nil, domain.SkinTypeNormal},
		{"clear winner", []domain.SkinType{"dry", "oily", "dry"}, domain.SkinTypeDry},
		{"tie goes to first seen", []domain.SkinType{"oily", "dry", "dry", "oily"}, domain.SkinTypeOily},
		{"single value", []domain.SkinType{"sensitive"}, domain.SkinTypeSensitive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := TopSkinType(tt.values)
			assert.Equal(t, tt.want, got)
		})
	}
}
