package testRoutes

import (
	testControllers "valquiz/controllers/test"
	"valquiz/middleware"
	testValidators "valquiz/validators/test"

	"github.com/gofiber/fiber/v2"
)

func SetupTestRoutes(app *fiber.App) {
	testGroup := app.Group("/api/test")

	testGroup.Post("/submit", middleware.JWTMiddleware, testValidators.Submit(), testControllers.SubmitTest)
	testGroup.Get("/has-submitted-user-details", middleware.JWTMiddleware, testControllers.HasSubmittedUserDetails)
}
