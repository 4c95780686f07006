package progressValidator

import (
	"encoding/json"
	"testing"

	"valquiz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAnswersListForm(t *testing.T) {
	raw := json.RawMessage(`[{"questionId":1,"answer":"Helium"},{"questionId":2,"answer":"Two"}]`)

	answers, err := normalizeAnswers(raw)
	require.NoError(t, err)
	assert.Equal(t, []models.AnswerPair{
		{QuestionID: 1, Answer: "Helium"},
		{QuestionID: 2, Answer: "Two"},
	}, answers)
}

func TestNormalizeAnswersKeyedForm(t *testing.T) {
	raw := json.RawMessage(`{"2":"Two","10":"At the onset of diastole","1":"Helium"}`)

	answers, err := normalizeAnswers(raw)
	require.NoError(t, err)

	// Keyed form comes back ordered by ascending question ID
	assert.Equal(t, []models.AnswerPair{
		{QuestionID: 1, Answer: "Helium"},
		{QuestionID: 2, Answer: "Two"},
		{QuestionID: 10, Answer: "At the onset of diastole"},
	}, answers)
}

func TestNormalizeAnswersRejectsNonNumericKeys(t *testing.T) {
	raw := json.RawMessage(`{"one":"Helium"}`)

	_, err := normalizeAnswers(raw)
	assert.Error(t, err)
}

func TestNormalizeAnswersRejectsMissingPayload(t *testing.T) {
	_, err := normalizeAnswers(nil)
	assert.Error(t, err)

	_, err = normalizeAnswers(json.RawMessage(`"just a string"`))
	assert.Error(t, err)
}

func TestNormalizeAnswersEmptyList(t *testing.T) {
	answers, err := normalizeAnswers(json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Empty(t, answers)
}
