package middlewares

import (
	"time"

	"luckyspin/database"
	"luckyspin/helpers"
	"luckyspin/models"

	"github.com/gofiber/fiber/v2"
)

func UserAuthMiddleware(c *fiber.Ctx) error {
	token := c.Get("X-Session-Token")
	if token == "" {
		return helpers.JSONError(c, "SESSION_TOKEN_REQUIRED")
	}

	var sess models.AuthSession
	if err := database.DB.Preload("User").
		Where("sid = ? AND expires_at > ?", token, time.Now()).
		First(&sess).Error; err != nil {
		return helpers.JSONError(c, "INVALID_OR_EXPIRED_SESSION")
	}

	if !sess.User.IsActive {
		return helpers.JSONError(c, "USER_INACTIVE")
	}

	c.Locals("user", sess.User)
	return c.Next()
}
