package database

import (
	"log"

	"luckyspin/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Seed loads the launch game catalog. It is a no-op when any game already
// exists so restarts do not duplicate the catalog.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Game{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("🟡 Game catalog already seeded (%d games), skipping\n", count)
		return nil
	}

	games := []models.Game{
		{
			Name:        "Lucky Sevens",
			Slug:        "lucky-sevens",
			Description: "Classic slot machine with lucky sevens and fruits. Simple gameplay with big wins!",
			Type:        "slot",
			Provider:    "NetEnt",
			ImageURL:    "https://via.placeholder.com/300x200/FF6B6B/FFFFFF?text=Lucky+Sevens",
			MinBet:      money("0.10"),
			MaxBet:      money("100.00"),
			RTP:         money("96.50"),
			IsActive:    true,
		},
		{
			Name:        "Mega Fortune",
			Slug:        "mega-fortune",
			Description: "Progressive jackpot slot with luxury theme. Win the ultimate jackpot!",
			Type:        "slot",
			Provider:    "NetEnt",
			ImageURL:    "https://via.placeholder.com/300x200/4ECDC4/FFFFFF?text=Mega+Fortune",
			MinBet:      money("0.25"),
			MaxBet:      money("200.00"),
			RTP:         money("95.80"),
			IsActive:    true,
		},
		{
			Name:        "Texas Hold'em",
			Slug:        "texas-holdem",
			Description: "Classic poker game. Play against the house and other players.",
			Type:        "poker",
			Provider:    "Evolution",
			ImageURL:    "https://via.placeholder.com/300x200/45B7D1/FFFFFF?text=Texas+Hold%27em",
			MinBet:      money("1.00"),
			MaxBet:      money("500.00"),
			RTP:         money("97.20"),
			IsActive:    true,
		},
		{
			Name:        "Classic Blackjack",
			Slug:        "classic-blackjack",
			Description: "Beat the dealer in this classic card game. Get as close to 21 as possible!",
			Type:        "blackjack",
			Provider:    "Evolution",
			ImageURL:    "https://via.placeholder.com/300x200/96CEB4/FFFFFF?text=Classic+Blackjack",
			MinBet:      money("0.50"),
			MaxBet:      money("300.00"),
			RTP:         money("99.50"),
			IsActive:    true,
		},
		{
			Name:        "European Roulette",
			Slug:        "european-roulette",
			Description: "Spin the wheel of fortune! Single zero European roulette with best odds.",
			Type:        "roulette",
			Provider:    "Evolution",
			ImageURL:    "https://via.placeholder.com/300x200/FFEAA7/333333?text=European+Roulette",
			MinBet:      money("0.10"),
			MaxBet:      money("1000.00"),
			RTP:         money("97.30"),
			IsActive:    true,
		},
		{
			Name:        "Baccarat Pro",
			Slug:        "baccarat-pro",
			Description: "Elegant card game for high rollers. Bet on Player, Banker, or Tie.",
			Type:        "baccarat",
			Provider:    "Playtech",
			ImageURL:    "https://via.placeholder.com/300x200/DDA0DD/FFFFFF?text=Baccarat+Pro",
			MinBet:      money("1.00"),
			MaxBet:      money("2000.00"),
			RTP:         money("98.90"),
			IsActive:    true,
		},
		{
			Name:        "Diamond Dreams",
			Slug:        "diamond-dreams",
			Description: "Sparkling slot with diamond symbols and bonus features.",
			Type:        "slot",
			Provider:    "Microgaming",
			ImageURL:    "https://via.placeholder.com/300x200/FFB6C1/333333?text=Diamond+Dreams",
			MinBet:      money("0.20"),
			MaxBet:      money("150.00"),
			RTP:         money("96.80"),
			IsActive:    true,
		},
		{
			Name:        "Fruit Blast",
			Slug:        "fruit-blast",
			Description: "Colorful fruit-themed slot with exciting bonus rounds.",
			Type:        "slot",
			Provider:    "Pragmatic Play",
			ImageURL:    "https://via.placeholder.com/300x200/98FB98/333333?text=Fruit+Blast",
			MinBet:      money("0.05"),
			MaxBet:      money("75.00"),
			RTP:         money("95.90"),
			IsActive:    true,
		},
	}

	if err := db.Create(&games).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d games\n", len(games))
	return nil
}
