package auth

import (
	"strings"
	"time"

	"luckyspin/database"
	"luckyspin/helpers"
	"luckyspin/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

const sessionTTL = 7 * 24 * time.Hour

// New accounts start with a welcome balance so players can try games without
// a deposit.
var startingBalance = decimal.RequireFromString("1000.00")

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return helpers.JSONError(c, "NAME_AND_EMAIL_REQUIRED")
	}

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "USER_ALREADY_EXISTS")
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Balance:  startingBalance,
		IsActive: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_REGISTER_USER")
	}

	sess := models.AuthSession{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := database.DB.Create(&sess).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_CREATE_SESSION")
	}

	return helpers.JSONSuccess(c, "User registered successfully", fiber.Map{
		"user":          user,
		"session_token": sess.SID,
		"expires_at":    sess.ExpiresAt,
	})
}
