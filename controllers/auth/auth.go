package authController

import (
	"encoding/json"
	"log"

	"valquiz/config"
	"valquiz/database"
	"valquiz/middleware"
	"valquiz/models"
	authValidator "valquiz/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setAuthCookie attaches the session token as an HTTP-only cookie
func setAuthCookie(c *fiber.Ctx, token string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		MaxAge:   maxAge,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// answersOrEmpty renders a stored answers column, falling back to an
// empty list when the stage was never submitted
func answersOrEmpty(raw []byte) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("[]")
	}
	return json.RawMessage(raw)
}

func Register(c *fiber.Ctx) error {
	creds, ok := c.Locals("credentials").(*authValidator.Credentials)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", creds.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	role := "USER"
	if config.AppConfig.AdminUsername != "" && creds.Username == config.AppConfig.AdminUsername {
		role = "ADMIN"
	}

	newUser := models.User{
		Username: creds.Username,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	if err := SeedPermissions(db, newUser.Role, newUser.ID); err != nil {
		log.Printf("Error seeding permissions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign permissions!", nil)
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Username)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	setAuthCookie(c, token, int(middleware.TokenTTL.Seconds()))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"token": token,
		"user":  fiber.Map{"id": newUser.ID, "username": newUser.Username},
	})
}

// SeedPermissions seeds default permissions for a given role and user ID
func SeedPermissions(db *gorm.DB, role string, userID uint) error {
	permissions := defaultPermissions(role)

	var permissionRecords []models.Permission
	for _, p := range permissions {
		permissionRecords = append(permissionRecords, models.Permission{
			UserID:     userID,
			Role:       role,
			Permission: p,
		})
	}

	return db.Create(&permissionRecords).Error
}

// defaultPermissions returns the permission strings granted to a role
func defaultPermissions(role string) []string {
	perms := []string{
		"login",
		"submit-stage",
		"view-own-results",
	}
	if role == "ADMIN" {
		perms = append(perms, "view-all-results")
	}
	return perms
}

func Login(c *fiber.Ctx) error {
	creds, ok := c.Locals("credentials").(*authValidator.Credentials)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	result := database.Database.Db.Where("username = ?", creds.Username).First(&user)

	// Unknown username and wrong password deliberately share one message
	// so the endpoint cannot be used to enumerate accounts.
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	setAuthCookie(c, token, int(middleware.TokenTTL.Seconds()))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  fiber.Map{"id": user.ID, "username": user.Username},
	})
}

func Logout(c *fiber.Ctx) error {
	setAuthCookie(c, "", -1)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logout successful.", fiber.Map{
		"success": true,
	})
}

// GetUserProgress returns the caller's full ledger snapshot plus the
// advisory next-stage pointer used by the client for navigation
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var userDetails interface{}
	if len(user.UserDetails) > 0 {
		userDetails = json.RawMessage(user.UserDetails)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", fiber.Map{
		"userDetails":        userDetails,
		"userDetailsAnswers": answersOrEmpty(user.UserDetailsAnswers),
		"progress":           user.Progress,
		"nextStage":          user.Progress.NextStage(),
		"pretestAnswers":     answersOrEmpty(user.PretestAnswers),
		"posttestAnswers":    answersOrEmpty(user.PosttestAnswers),
	})
}
