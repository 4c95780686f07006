package testController

import (
	"encoding/json"
	"log"

	"valquiz/database"
	"valquiz/middleware"
	"valquiz/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// SubmitTest appends a legacy test submission for the caller. The log is
// append-only and independent of the progress ledger; nothing stops a
// user from submitting more than once.
func SubmitTest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	answers, ok := c.Locals("answers").([]models.AnswerPair)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
	}

	b, err := json.Marshal(answers)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
	}

	submission := models.TestSubmission{
		UserID:  userID,
		Answers: datatypes.JSON(b),
	}

	if err := database.Database.Db.Create(&submission).Error; err != nil {
		log.Printf("Error saving test submission: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit test!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Test submitted.", fiber.Map{
		"testId": submission.ID,
	})
}

// HasSubmittedUserDetails reports whether the caller has at least one
// legacy submission on record
func HasSubmittedUserDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var submission models.TestSubmission
	err := database.Database.Db.Where("user_id = ?", userID).Order("created_at asc").First(&submission).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No submission found.", fiber.Map{
			"submitted": false,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission found.", fiber.Map{
		"submitted": true,
		"testId":    submission.ID,
		"createdAt": submission.CreatedAt,
	})
}
