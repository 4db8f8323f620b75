package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"luckyspin/engine"
	"luckyspin/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxBetCeiling is the system-wide sanity bound on a single bet, independent
// of any game's own limits.
var maxBetCeiling = decimal.NewFromInt(1000)

// CheckBetBounds enforces the absolute bound on a bet amount before any
// per-game validation runs.
func CheckBetBounds(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(maxBetCeiling) {
		return ErrBetOutOfBounds
	}
	return nil
}

// ValidateBet rejects a wager before any randomness or mutation occurs.
// Check order decides which error is surfaced first:
// active -> balance -> minimum -> maximum.
func ValidateBet(game *models.Game, user *models.User, amount decimal.Decimal) error {
	if !game.IsActive {
		return ErrGameUnavailable
	}
	if amount.GreaterThan(user.Balance) {
		return ErrInsufficientBalance
	}
	if amount.LessThan(game.MinBet) {
		return fmt.Errorf("%w: minimum bet is %s", ErrBelowMinimum, game.MinBet.StringFixed(2))
	}
	if amount.GreaterThan(game.MaxBet) {
		return fmt.Errorf("%w: maximum bet is %s", ErrAboveMaximum, game.MaxBet.StringFixed(2))
	}
	return nil
}

// SettleBet validates a wager, draws its outcome and persists the session
// row plus the balance update as one atomic unit. The user row is locked
// for the duration of the read-modify-write, so concurrent bets from the
// same user serialize instead of losing updates.
//
// On a validation error nothing is mutated; on a storage error the whole
// transaction rolls back and the caller sees no balance change and no
// session.
func SettleBet(db *gorm.DB, eng *engine.Engine, userID, gameID uint, amount decimal.Decimal) (*models.GameSession, error) {
	if err := CheckBetBounds(amount); err != nil {
		return nil, err
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

	var game models.Game
	if err := tx.First(&game, gameID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if err := ValidateBet(&game, &user, amount); err != nil {
		tx.Rollback()
		return nil, err
	}

	before := user.Balance
	outcome := eng.Spin(amount)
	after := before.Add(outcome.NetResult)

	resultBlob, err := json.Marshal(models.GameResult{
		IsWin:      outcome.IsWin,
		Multiplier: outcome.Multiplier,
		NetResult:  outcome.NetResult,
		Symbols:    outcome.Symbols,
	})
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// Instantaneous game: started and ended at the same moment.
	now := time.Now()
	session := models.GameSession{
		UserID:        user.ID,
		GameID:        game.ID,
		BetAmount:     amount,
		PayoutAmount:  outcome.Payout,
		BalanceBefore: before,
		BalanceAfter:  after,
		GameResult:    datatypes.JSON(resultBlob),
		StartedAt:     now,
		EndedAt:       now,
	}
	if err := tx.Create(&session).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	user.Balance = after
	user.LastGameAt = &now
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &session, nil
}
