package routes

import (
	"time"

	"luckyspin/controllers/auth"
	"luckyspin/controllers/game"
	"luckyspin/controllers/wallet"
	"luckyspin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Get("/health-check", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)

	gameroutes := app.Group("/games", middlewares.UserAuthMiddleware)
	gameroutes.Get("/", game.Index)
	gameroutes.Get("/history", game.History)
	gameroutes.Post("/play", game.Play)
	gameroutes.Get("/:slug", game.Show)

	walletroutes := app.Group("/wallet", middlewares.UserAuthMiddleware)
	walletroutes.Get("/balance", wallet.Balance)
	walletroutes.Post("/deposit", wallet.Deposit)
	walletroutes.Post("/withdraw", wallet.Withdraw)
}
