package game

import (
	"luckyspin/database"
	"luckyspin/helpers"
	"luckyspin/models"

	"github.com/gofiber/fiber/v2"
)

func Show(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var g models.Game
	if err := database.DB.Where("slug = ?", slug).First(&g).Error; err != nil {
		return helpers.JSONError(c, "GAME_NOT_FOUND")
	}

	if !g.IsActive {
		return helpers.JSONError(c, "This game is currently unavailable.")
	}

	user, _ := c.Locals("user").(models.User)

	return helpers.JSONSuccess(c, "Game retrieved successfully", fiber.Map{
		"game": g,
		"user": user,
	})
}
