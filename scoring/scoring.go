package scoring

import "valquiz/models"

// KeyVersion tags the answer key so stored scores can be traced back to
// the key revision they were computed against.
const KeyVersion = 1

// AssessmentKey maps question IDs to the single correct answer text.
// Pretest and posttest intentionally share the same 20-question key, so
// both transitions score against this one map.
var AssessmentKey = map[int]string{
	1:  "Intra-Aortic Balloon Pump",
	2:  "To provide temporary mechanical support in cardiogenic shock",
	3:  "Polyurethane",
	4:  "Two",
	5:  "In the descending thoracic aorta, below the left subclavian artery",
	6:  "Helium",
	7:  "Femoral artery",
	8:  "Arterial pressure waveform and ECG",
	9:  "Two",
	10: "At the onset of diastole",
	11: "Late balloon inflation",
	12: "To increase cardiac output and coronary perfusion",
	13: "Aortic dissection",
	14: "Cardiogenic shock",
	15: "Limb ischemia",
	16: "Peripheral pulses",
	17: "Peripheral circulation",
	18: "30 ml/hr",
	19: "Check pedal pulses",
	20: "Option A",
}

// Score counts submitted answers that exactly match the key entry for
// their question ID. Matching is case- and whitespace-sensitive string
// equality. Question IDs absent from the key contribute zero rather than
// erroring. The function is pure: identical input always yields the same
// result, which is what makes stage resubmission idempotent.
func Score(answers []models.AnswerPair, key map[int]string) int {
	score := 0
	for _, a := range answers {
		if correct, ok := key[a.QuestionID]; ok && correct == a.Answer {
			score++
		}
	}
	return score
}
