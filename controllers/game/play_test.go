package game_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"luckyspin/database"
	"luckyspin/engine"
	"luckyspin/models"
	"luckyspin/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type scriptedSource struct {
	vals []int
	i    int
}

func (s *scriptedSource) Intn(n int) int {
	if s.i >= len(s.vals) {
		return 0
	}
	v := s.vals[s.i] % n
	s.i++
	return v
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.GameSession{},
		&models.WalletTransaction{},
		&models.AuthSession{},
	))
	database.DB = db

	app := fiber.New()
	routes.Setup(app)
	return app
}

func registerPlayer(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := postJSON(t, app, "/auth/register", "", map[string]any{
		"name":  "Test Player",
		"email": "player@example.com",
	})
	require.True(t, resp.Success, resp.Message)

	var data struct {
		SessionToken string `json:"session_token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.SessionToken)
	return data.SessionToken
}

func seedGame(t *testing.T, minBet, maxBet string, active bool) models.Game {
	t.Helper()
	g := models.Game{
		Name:     "Lucky Sevens",
		Slug:     "lucky-sevens",
		Type:     "slot",
		Provider: "NetEnt",
		MinBet:   decimal.RequireFromString(minBet),
		MaxBet:   decimal.RequireFromString(maxBet),
		RTP:      decimal.RequireFromString("96.50"),
		IsActive: active,
	}
	require.NoError(t, database.DB.Create(&g).Error)
	return g
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body any) apiResponse {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&parsed))
	return parsed
}

func getJSON(t *testing.T, app *fiber.App, path, token string) apiResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&parsed))
	return parsed
}

func swapEngine(t *testing.T, eng *engine.Engine) {
	t.Helper()
	old := engine.Default
	engine.Default = eng
	t.Cleanup(func() { engine.Default = old })
}

func TestPlayLosingBet(t *testing.T) {
	app := setupApp(t)
	token := registerPlayer(t, app)
	g := seedGame(t, "1.00", "50.00", true)
	swapEngine(t, engine.New(&scriptedSource{vals: []int{99, 0, 1, 2}}))

	resp := postJSON(t, app, "/games/play", token, map[string]any{
		"game_id":    g.ID,
		"bet_amount": "5.00",
	})

	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, "Better luck next time!", resp.Message)

	var data struct {
		Balance    decimal.Decimal `json:"balance"`
		GameResult struct {
			IsWin   bool     `json:"is_win"`
			Symbols []string `json:"symbols"`
		} `json:"game_result"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.Balance.Equal(decimal.RequireFromString("995.00")),
		"starting balance 1000.00 minus the lost 5.00 bet, got %s", data.Balance)
	assert.False(t, data.GameResult.IsWin)
	require.Len(t, data.GameResult.Symbols, 3)
}

func TestPlayWinningBet(t *testing.T) {
	app := setupApp(t)
	token := registerPlayer(t, app)
	g := seedGame(t, "1.00", "50.00", true)
	// Forced win at 2.00x: payout 10.00 on a 5.00 bet.
	swapEngine(t, engine.New(&scriptedSource{vals: []int{0, 50, 3}}))

	resp := postJSON(t, app, "/games/play", token, map[string]any{
		"game_id":    g.ID,
		"bet_amount": "5.00",
	})

	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, "Congratulations! You won $10.00!", resp.Message)

	var data struct {
		Balance decimal.Decimal `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.Balance.Equal(decimal.RequireFromString("1005.00")))

	// The session row must exist and agree with the returned balance.
	var sessions []models.GameSession
	require.NoError(t, database.DB.Find(&sessions).Error)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].BalanceAfter.Equal(data.Balance))
}

func TestPlayRejectsInsufficientBalance(t *testing.T) {
	app := setupApp(t)
	token := registerPlayer(t, app)
	g := seedGame(t, "1.00", "2000.00", true)

	// Shrink the welcome balance so a bet inside the game limits overdraws.
	var user models.User
	require.NoError(t, database.DB.Where("email = ?", "player@example.com").First(&user).Error)
	user.Balance = decimal.RequireFromString("10.00")
	require.NoError(t, database.DB.Save(&user).Error)

	resp := postJSON(t, app, "/games/play", token, map[string]any{
		"game_id":    g.ID,
		"bet_amount": "20.00",
	})

	require.False(t, resp.Success)
	assert.Contains(t, resp.Message, "insufficient balance")

	fresh := models.User{}
	require.NoError(t, database.DB.First(&fresh, user.ID).Error)
	assert.True(t, fresh.Balance.Equal(decimal.RequireFromString("10.00")))
}

func TestPlayRequiresSession(t *testing.T) {
	app := setupApp(t)
	g := seedGame(t, "1.00", "50.00", true)

	resp := postJSON(t, app, "/games/play", "", map[string]any{
		"game_id":    g.ID,
		"bet_amount": "5.00",
	})
	require.False(t, resp.Success)
	assert.Equal(t, "SESSION_TOKEN_REQUIRED", resp.Message)

	resp = postJSON(t, app, "/games/play", "not-a-token", map[string]any{
		"game_id":    g.ID,
		"bet_amount": "5.00",
	})
	require.False(t, resp.Success)
	assert.Equal(t, "INVALID_OR_EXPIRED_SESSION", resp.Message)
}

func TestGameIndexAndShow(t *testing.T) {
	app := setupApp(t)
	token := registerPlayer(t, app)
	seedGame(t, "1.00", "50.00", true)
	inactive := models.Game{
		Name: "Mega Fortune", Slug: "mega-fortune", Type: "slot", Provider: "NetEnt",
		MinBet: decimal.RequireFromString("0.25"), MaxBet: decimal.RequireFromString("200.00"),
		RTP: decimal.RequireFromString("95.80"), IsActive: false,
	}
	require.NoError(t, database.DB.Create(&inactive).Error)

	resp := getJSON(t, app, "/games/", token)
	require.True(t, resp.Success, resp.Message)

	var data struct {
		Games     []models.Game `json:"games"`
		GameTypes []string      `json:"game_types"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Games, 1, "inactive games are hidden from the catalog")
	assert.Equal(t, []string{"slot"}, data.GameTypes)

	resp = getJSON(t, app, "/games/lucky-sevens", token)
	require.True(t, resp.Success)

	resp = getJSON(t, app, "/games/mega-fortune", token)
	require.False(t, resp.Success)
	assert.Equal(t, "This game is currently unavailable.", resp.Message)

	resp = getJSON(t, app, "/games/no-such-game", token)
	require.False(t, resp.Success)
	assert.Equal(t, "GAME_NOT_FOUND", resp.Message)
}

func TestGameHistory(t *testing.T) {
	app := setupApp(t)
	token := registerPlayer(t, app)
	g := seedGame(t, "1.00", "50.00", true)
	swapEngine(t, engine.New(&scriptedSource{vals: []int{99, 0, 1, 2, 99, 0, 1, 2}}))

	for i := 0; i < 2; i++ {
		resp := postJSON(t, app, "/games/play", token, map[string]any{
			"game_id":    g.ID,
			"bet_amount": "2.00",
		})
		require.True(t, resp.Success, fmt.Sprintf("bet %d: %s", i, resp.Message))
	}

	resp := getJSON(t, app, "/games/history", token)
	require.True(t, resp.Success, resp.Message)

	var data struct {
		Sessions []models.GameSession `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Sessions, 2)
}
