package services

import (
	"errors"
	"fmt"

	"luckyspin/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	TrxDeposit  = "deposit"
	TrxWithdraw = "withdraw"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// AdjustBalance applies a non-bet balance change (deposit or withdraw) and
// records the audit row in the same transaction, with the same row-lock
// discipline as settlement.
func AdjustBalance(db *gorm.DB, userID uint, amount decimal.Decimal, trxType, note string) (*models.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	delta := amount
	switch trxType {
	case TrxDeposit:
	case TrxWithdraw:
		delta = amount.Neg()
	default:
		return nil, fmt.Errorf("unknown transaction type %q", trxType)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, userID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if trxType == TrxWithdraw && amount.GreaterThan(user.Balance) {
		tx.Rollback()
		return nil, ErrInsufficientBalance
	}

	before := user.Balance
	user.Balance = before.Add(delta)
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	trx := models.WalletTransaction{
		UserID:        user.ID,
		TrxType:       trxType,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  user.Balance,
		Note:          note,
		RefID:         uuid.New().String(),
	}
	if err := tx.Create(&trx).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &trx, nil
}
