package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Source is the randomness the engine draws from. *math/rand.Rand satisfies
// it; tests inject scripted sources to force specific outcomes.
type Source interface {
	Intn(n int) int
}

// Symbols is the slot reel alphabet. A winning spin shows a triple of one
// symbol; a losing spin is guaranteed to never show a triple.
var Symbols = []string{"🍒", "🍋", "🍊", "🍇", "⭐", "💎", "🔔", "7️⃣"}

const (
	winChancePercent = 45
	// multiplier steps in hundredths, inclusive: 1.50x to 3.00x
	minMultiplierSteps = 150
	maxMultiplierSteps = 300
)

// Outcome is the settled result of a single spin. It is the same for every
// game in the catalog; the game's RTP is display-only and never consulted.
type Outcome struct {
	IsWin      bool
	Multiplier decimal.Decimal
	Payout     decimal.Decimal
	NetResult  decimal.Decimal
	Symbols    []string
}

type Engine struct {
	src Source
}

func New(src Source) *Engine {
	return &Engine{src: src}
}

// NewDefault returns an engine backed by a time-seeded, mutex-guarded
// rand.Rand, safe to share across request handlers.
func NewDefault() *Engine {
	return New(&lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))})
}

// Default is the engine used by the HTTP layer. Tests may swap it.
var Default = NewDefault()

// Spin draws a win/lose decision at the fixed house win chance and computes
// the payout for the given bet. All money math is two-decimal fixed point.
func (e *Engine) Spin(bet decimal.Decimal) Outcome {
	if e.src.Intn(100) < winChancePercent {
		steps := minMultiplierSteps + e.src.Intn(maxMultiplierSteps-minMultiplierSteps+1)
		multiplier := decimal.New(int64(steps), -2)
		payout := bet.Mul(multiplier).Round(2)
		return Outcome{
			IsWin:      true,
			Multiplier: multiplier,
			Payout:     payout,
			NetResult:  payout.Sub(bet),
			Symbols:    e.winningSymbols(),
		}
	}

	return Outcome{
		IsWin:      false,
		Multiplier: decimal.Zero,
		Payout:     decimal.Zero,
		NetResult:  bet.Neg(),
		Symbols:    e.losingSymbols(),
	}
}

func (e *Engine) winningSymbols() []string {
	s := Symbols[e.src.Intn(len(Symbols))]
	return []string{s, s, s}
}

// losingSymbols rejection-samples so a losing spin never shows a triple.
func (e *Engine) losingSymbols() []string {
	for {
		result := []string{
			Symbols[e.src.Intn(len(Symbols))],
			Symbols[e.src.Intn(len(Symbols))],
			Symbols[e.src.Intn(len(Symbols))],
		}
		if result[0] != result[1] || result[1] != result[2] {
			return result
		}
	}
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}
