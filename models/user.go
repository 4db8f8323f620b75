package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Name       string          `gorm:"size:100" json:"name"`
	Email      string          `gorm:"uniqueIndex;size:255" json:"email"`
	Balance    decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"balance"`
	IsActive   bool            `gorm:"default:true" json:"is_active"`
	LastGameAt *time.Time      `json:"last_game_at"`

	GameSessions []GameSession       `gorm:"foreignKey:UserID" json:"-"`
	Transactions []WalletTransaction `gorm:"foreignKey:UserID" json:"-"`
}

type WalletTransaction struct {
	gorm.Model

	UserID        uint            `gorm:"index" json:"user_id"`
	TrxType       string          `gorm:"size:16" json:"trx_type"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(12,2)" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(12,2)" json:"balance_after"`
	Note          string          `gorm:"size:255" json:"note"`
	RefID         string          `gorm:"size:64;index" json:"ref_id"`
}
