package progressRoutes

import (
	progressControllers "valquiz/controllers/progress"
	"valquiz/middleware"
	"valquiz/models"
	progressValidators "valquiz/validators/progress"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/api/progress")

	// Stage submissions, in traversal order
	progressGroup.Post("/user-details", middleware.JWTMiddleware, progressValidators.Answers(models.UserDetailsAnswerCount), progressControllers.SaveUserDetails)
	progressGroup.Post("/pretest", middleware.JWTMiddleware, progressValidators.Answers(models.AssessmentAnswerCount), progressControllers.SavePretest)
	progressGroup.Post("/intervention", middleware.JWTMiddleware, progressControllers.CompleteIntervention)
	progressGroup.Post("/posttest", middleware.JWTMiddleware, progressValidators.Answers(models.AssessmentAnswerCount), progressControllers.SavePosttest)

	// Results
	progressGroup.Get("/results/me", middleware.JWTMiddleware, progressControllers.GetMyResults)
	progressGroup.Get("/results", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("view-all-results"), progressControllers.GetAllResults)
}
