package authRoutes

import (
	authControllers "valquiz/controllers/auth"
	"valquiz/middleware"
	authValidators "valquiz/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Post("/register", authValidators.Register(), authControllers.Register)
	userGroup.Post("/login", authValidators.Login(), authControllers.Login)
	userGroup.Post("/logout", authControllers.Logout)
	userGroup.Get("/progress", middleware.JWTMiddleware, authControllers.GetUserProgress)
}
