package scoring

import (
	"testing"

	"valquiz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCorrectSubmission() []models.AnswerPair {
	answers := make([]models.AnswerPair, 0, len(AssessmentKey))
	for id := 1; id <= len(AssessmentKey); id++ {
		answers = append(answers, models.AnswerPair{QuestionID: id, Answer: AssessmentKey[id]})
	}
	return answers
}

func TestAssessmentKeyHasTwentyQuestions(t *testing.T) {
	require.Len(t, AssessmentKey, models.AssessmentAnswerCount)
	for id := 1; id <= models.AssessmentAnswerCount; id++ {
		assert.Contains(t, AssessmentKey, id, "key is dense over 1..20")
		assert.NotEmpty(t, AssessmentKey[id])
	}
}

func TestScoreAllCorrect(t *testing.T) {
	answers := fullCorrectSubmission()
	assert.Equal(t, 20, Score(answers, AssessmentKey))
}

func TestScorePartiallyCorrect(t *testing.T) {
	answers := fullCorrectSubmission()
	for i := 15; i < 20; i++ {
		answers[i].Answer = "not the right answer"
	}
	assert.Equal(t, 15, Score(answers, AssessmentKey))
}

func TestScoreIsCaseSensitive(t *testing.T) {
	key := map[int]string{1: "Helium"}
	answers := []models.AnswerPair{{QuestionID: 1, Answer: "helium"}}
	assert.Equal(t, 0, Score(answers, key))

	answers[0].Answer = "Helium"
	assert.Equal(t, 1, Score(answers, key))
}

func TestScoreIsWhitespaceSensitive(t *testing.T) {
	key := map[int]string{1: "Two"}
	answers := []models.AnswerPair{{QuestionID: 1, Answer: "Two "}}
	assert.Equal(t, 0, Score(answers, key))
}

func TestScoreUnknownQuestionIDsContributeZero(t *testing.T) {
	answers := []models.AnswerPair{
		{QuestionID: 99, Answer: "Helium"},
		{QuestionID: -1, Answer: "Helium"},
		{QuestionID: 6, Answer: "Helium"},
	}
	assert.Equal(t, 1, Score(answers, AssessmentKey))
}

func TestScoreIsIdempotent(t *testing.T) {
	answers := fullCorrectSubmission()
	answers[3].Answer = "changed"

	first := Score(answers, AssessmentKey)
	second := Score(answers, AssessmentKey)
	assert.Equal(t, first, second)
}

func TestScoreBounds(t *testing.T) {
	cases := [][]models.AnswerPair{
		nil,
		{},
		fullCorrectSubmission(),
		{{QuestionID: 1, Answer: ""}, {QuestionID: 2, Answer: ""}},
	}

	for _, answers := range cases {
		got := Score(answers, AssessmentKey)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, len(answers))
	}
}
