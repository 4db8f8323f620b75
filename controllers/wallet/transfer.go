package wallet

import (
	"errors"

	"luckyspin/database"
	"luckyspin/helpers"
	"luckyspin/models"
	"luckyspin/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

func Deposit(c *fiber.Ctx) error {
	return adjust(c, services.TrxDeposit, "Deposit via API")
}

func Withdraw(c *fiber.Ctx) error {
	return adjust(c, services.TrxWithdraw, "Withdraw via API")
}

func adjust(c *fiber.Ctx, trxType, defaultNote string) error {
	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	note := req.Note
	if note == "" {
		note = defaultNote
	}

	trx, err := services.AdjustBalance(database.DB, user.ID, req.Amount.Round(2), trxType, note)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) ||
			errors.Is(err, services.ErrInsufficientBalance) {
			return helpers.JSONError(c, err.Error())
		}
		return helpers.JSONServerError(c, "FAILED_TO_UPDATE_BALANCE")
	}

	return helpers.JSONSuccess(c, "Balance updated successfully", fiber.Map{
		"balance": trx.BalanceAfter,
		"ref_id":  trx.RefID,
	})
}
