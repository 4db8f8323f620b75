package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Game is a catalog entry. Settlement only reads it; rows are managed by
// seeding/ops tooling. RTP is display-only metadata and is never consumed
// by the outcome engine.
type Game struct {
	gorm.Model

	Name        string          `gorm:"size:100;index" json:"name"`
	Slug        string          `gorm:"uniqueIndex;size:100" json:"slug"`
	Description string          `gorm:"size:500" json:"description"`
	Type        string          `gorm:"size:32;index" json:"type"`
	Provider    string          `gorm:"size:64;index" json:"provider"`
	ImageURL    string          `gorm:"size:255" json:"image_url"`
	MinBet      decimal.Decimal `gorm:"type:numeric(12,2);default:0.01" json:"min_bet"`
	MaxBet      decimal.Decimal `gorm:"type:numeric(12,2);default:100.00" json:"max_bet"`
	RTP         decimal.Decimal `gorm:"type:numeric(5,2);default:96.00" json:"rtp"`
	IsActive    bool            `gorm:"default:true;index" json:"is_active"`
}
