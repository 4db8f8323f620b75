package game

import (
	"errors"
	"fmt"

	"luckyspin/database"
	"luckyspin/engine"
	"luckyspin/helpers"
	"luckyspin/models"
	"luckyspin/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type PlayRequest struct {
	GameID    uint            `json:"game_id"`
	BetAmount decimal.Decimal `json:"bet_amount"`
}

// Play settles a single bet: validation, outcome draw, session row and
// balance update happen atomically in the settlement service.
func Play(c *fiber.Ctx) error {
	var req PlayRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.GameID == 0 {
		return helpers.JSONError(c, "GAME_ID_REQUIRED")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	// Two-decimal fixed point at the boundary; sub-cent noise is rounded
	// away before validation.
	amount := req.BetAmount.Round(2)

	session, err := services.SettleBet(database.DB, engine.Default, user.ID, req.GameID, amount)
	if err != nil {
		if services.IsValidationError(err) ||
			errors.Is(err, services.ErrGameNotFound) || errors.Is(err, services.ErrUserNotFound) {
			return helpers.JSONError(c, err.Error())
		}
		return helpers.JSONServerError(c, "FAILED_TO_SETTLE_BET")
	}

	result, err := session.Result()
	if err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_DECODE_RESULT")
	}

	message := "Better luck next time!"
	if result.IsWin {
		message = fmt.Sprintf("Congratulations! You won $%s!", session.PayoutAmount.StringFixed(2))
	}

	return helpers.JSONSuccess(c, message, fiber.Map{
		"session":     session,
		"game_result": result,
		"balance":     session.BalanceAfter,
	})
}
