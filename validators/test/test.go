package testValidator

import (
	"valquiz/models"
	progressValidator "valquiz/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// Submit validates the legacy submission payload: same normalization and
// arity rules as the user-details stage.
func Submit() fiber.Handler {
	return progressValidator.Answers(models.UserDetailsAnswerCount)
}
