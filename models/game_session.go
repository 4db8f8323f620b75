package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GameSession is the immutable record of one settled bet. It is created
// inside the settlement transaction and never updated afterwards; its
// BalanceAfter must always equal the user's balance written in the same
// transaction.
type GameSession struct {
	gorm.Model

	UserID uint `gorm:"index;index:idx_user_started" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	GameID uint `gorm:"index" json:"game_id"`
	Game   Game `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	BetAmount     decimal.Decimal `gorm:"type:numeric(12,2)" json:"bet_amount"`
	PayoutAmount  decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"payout_amount"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(12,2)" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(12,2)" json:"balance_after"`

	GameResult datatypes.JSON `gorm:"type:jsonb" json:"game_result"`

	StartedAt time.Time `gorm:"index;index:idx_user_started" json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// GameResult is the structured outcome stored in the session's jsonb column.
type GameResult struct {
	IsWin      bool            `json:"is_win"`
	Multiplier decimal.Decimal `json:"multiplier"`
	NetResult  decimal.Decimal `json:"net_result"`
	Symbols    []string        `json:"symbols"`
}

func (s *GameSession) Result() (GameResult, error) {
	var r GameResult
	err := json.Unmarshal(s.GameResult, &r)
	return r, err
}
