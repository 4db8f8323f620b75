package game

import (
	"luckyspin/database"
	"luckyspin/helpers"
	"luckyspin/models"

	"github.com/gofiber/fiber/v2"
)

const historyLimit = 50

func History(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	var sessions []models.GameSession
	if err := database.DB.Where("user_id = ?", user.ID).
		Order("started_at DESC").Limit(historyLimit).
		Find(&sessions).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_LOAD_HISTORY")
	}

	return helpers.JSONSuccess(c, "Game history retrieved successfully", fiber.Map{
		"sessions": sessions,
		"balance":  user.Balance,
	})
}
