package progressController

import (
	"encoding/json"
	"log"

	"valquiz/database"
	"valquiz/middleware"
	"valquiz/models"
	"valquiz/scoring"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// currentUser resolves the authenticated user from the request context.
// A nil user means the error response has already been written.
func currentUser(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return &user, nil
}

// submittedAnswers pulls the normalized answer list stored by the
// validator middleware
func submittedAnswers(c *fiber.Ctx) ([]models.AnswerPair, bool) {
	answers, ok := c.Locals("answers").([]models.AnswerPair)
	return answers, ok
}

func answersJSON(answers []models.AnswerPair) datatypes.JSON {
	b, err := json.Marshal(answers)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

// SaveUserDetails stores the demographic survey answers and marks the
// first stage complete. Resubmission overwrites the stored answers and
// leaves the flag set.
func SaveUserDetails(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if user == nil {
		return err
	}

	answers, ok := submittedAnswers(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
	}

	updates := map[string]interface{}{
		"user_details_answers":   answersJSON(answers),
		"user_details_completed": true,
	}
	if err := database.Database.Db.Model(user).Updates(updates).Error; err != nil {
		log.Printf("Error saving user details: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save user details!", nil)
	}

	user.Progress.UserDetailsCompleted = true

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User details saved successfully.", fiber.Map{
		"progress": user.Progress,
	})
}

// SavePretest scores the pretest submission against the assessment key
// and stores answers, score and the completion flag in one write
func SavePretest(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if user == nil {
		return err
	}

	if !user.Progress.CanSubmit(models.StagePretest) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete the demographic survey first!", nil)
	}

	answers, ok := submittedAnswers(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
	}

	pretestScore := scoring.Score(answers, scoring.AssessmentKey)

	updates := map[string]interface{}{
		"pretest_answers":   answersJSON(answers),
		"pretest_score":     pretestScore,
		"pretest_completed": true,
	}
	if err := database.Database.Db.Model(user).Updates(updates).Error; err != nil {
		log.Printf("Error saving pretest: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save pretest!", nil)
	}

	user.Progress.PretestCompleted = true

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pretest saved successfully.", fiber.Map{
		"progress":     user.Progress,
		"pretestScore": pretestScore,
	})
}

// CompleteIntervention marks the passive content stage complete. The
// intervention carries no payload to validate; the client sends a single
// completion signal once the material has been viewed.
func CompleteIntervention(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if user == nil {
		return err
	}

	if !user.Progress.CanSubmit(models.StageIntervention) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete the pretest first!", nil)
	}

	if err := database.Database.Db.Model(user).Update("intervention_completed", true).Error; err != nil {
		log.Printf("Error completing intervention: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete intervention!", nil)
	}

	user.Progress.InterventionCompleted = true

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Intervention completed.", fiber.Map{
		"progress": user.Progress,
	})
}

// SavePosttest mirrors SavePretest against the same assessment key
func SavePosttest(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if user == nil {
		return err
	}

	if !user.Progress.CanSubmit(models.StagePosttest) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete the intervention first!", nil)
	}

	answers, ok := submittedAnswers(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
	}

	posttestScore := scoring.Score(answers, scoring.AssessmentKey)

	updates := map[string]interface{}{
		"posttest_answers":   answersJSON(answers),
		"posttest_score":     posttestScore,
		"posttest_completed": true,
	}
	if err := database.Database.Db.Model(user).Updates(updates).Error; err != nil {
		log.Printf("Error saving posttest: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save posttest!", nil)
	}

	user.Progress.PosttestCompleted = true

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posttest saved successfully.", fiber.Map{
		"progress":      user.Progress,
		"posttestScore": posttestScore,
	})
}

// GetMyResults returns the caller's own scores and stage flags
func GetMyResults(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if user == nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully.", fiber.Map{
		"username":      user.Username,
		"progress":      user.Progress,
		"pretestScore":  user.PretestScore,
		"posttestScore": user.PosttestScore,
	})
}

// GetAllResults returns every user's scores and stage flags. Route
// wiring restricts this to holders of the view-all-results permission.
func GetAllResults(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("id asc").Find(&users).Error; err != nil {
		log.Printf("Error fetching results: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}

	results := make([]fiber.Map, len(users))
	for i, u := range users {
		results[i] = fiber.Map{
			"username":      u.Username,
			"pretestScore":  u.PretestScore,
			"posttestScore": u.PosttestScore,
			"progress":      u.Progress,
			"createdAt":     u.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully.", fiber.Map{
		"users": results,
	})
}
