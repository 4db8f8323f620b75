package wallet

import (
	"luckyspin/helpers"
	"luckyspin/models"

	"github.com/gofiber/fiber/v2"
)

func Balance(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	return helpers.JSONSuccess(c, "Balance retrieved successfully", fiber.Map{
		"user_id":      user.ID,
		"balance":      user.Balance,
		"last_game_at": user.LastGameAt,
	})
}
