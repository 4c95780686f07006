package progressValidator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"valquiz/middleware"
	"valquiz/models"

	"github.com/gofiber/fiber/v2"
)

type answersPayload struct {
	Answers json.RawMessage `json:"answers"`
}

// normalizeAnswers accepts either the list form
// [{"questionId":1,"answer":"..."}] or the keyed form {"1":"..."} and
// returns the list form, keyed entries ordered by ascending question ID.
func normalizeAnswers(raw json.RawMessage) ([]models.AnswerPair, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no answers provided")
	}

	var list []models.AnswerPair
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var keyed map[string]string
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nil, fmt.Errorf("answers must be a list or a questionId-keyed object")
	}

	list = make([]models.AnswerPair, 0, len(keyed))
	for k, v := range keyed {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("invalid question id %q", k)
		}
		list = append(list, models.AnswerPair{QuestionID: id, Answer: v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].QuestionID < list[j].QuestionID })

	return list, nil
}

// Answers returns a validator middleware that normalizes the answers
// payload and enforces the stage's exact answer count. The full set is
// rejected when the arity is off; there are no partial writes downstream.
func Answers(count int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(answersPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		answers, err := normalizeAnswers(reqData.Answers)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
		}

		if len(answers) != count {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
				fmt.Sprintf("Expected %d answers!", count), nil)
		}

		c.Locals("answers", answers)
		return c.Next()
	}
}
