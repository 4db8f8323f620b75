package auth

import (
	"strings"
	"time"

	"luckyspin/database"
	"luckyspin/helpers"
	"luckyspin/models"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email string `json:"email"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return helpers.JSONError(c, "EMAIL_REQUIRED")
	}

	var user models.User
	if err := database.DB.Where("email = ? AND is_active = true", email).
		First(&user).Error; err != nil {
		return helpers.JSONError(c, "USER_NOT_FOUND")
	}

	sess := models.AuthSession{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := database.DB.Create(&sess).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_CREATE_SESSION")
	}

	return helpers.JSONSuccess(c, "Logged in successfully", fiber.Map{
		"user":          user,
		"session_token": sess.SID,
		"expires_at":    sess.ExpiresAt,
	})
}
