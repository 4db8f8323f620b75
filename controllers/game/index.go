package game

import (
	"luckyspin/database"
	"luckyspin/helpers"
	"luckyspin/models"

	"github.com/gofiber/fiber/v2"
)

func Index(c *fiber.Ctx) error {
	var games []models.Game
	if err := database.DB.Where("is_active = ?", true).
		Order("name").Find(&games).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_LOAD_GAMES")
	}

	var gameTypes []string
	if err := database.DB.Model(&models.Game{}).
		Where("is_active = ?", true).
		Distinct("type").Order("type").
		Pluck("type", &gameTypes).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_LOAD_GAMES")
	}

	user, _ := c.Locals("user").(models.User)

	return helpers.JSONSuccess(c, "Games retrieved successfully", fiber.Map{
		"games":      games,
		"game_types": gameTypes,
		"user":       user,
	})
}
