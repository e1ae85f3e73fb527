// handlers/game.go
package handlers

import (
	"github.com/geraldsberongoy/cpe-fair-web-sub000/services"

	"github.com/gofiber/fiber/v2"
)

func SetupGameRoutes(app *fiber.App, gameService *services.GameService, gate fiber.Handler) {
	game := app.Group("/api/game")

	game.Get("/", gameService.GetAllGames)
	game.Get("/:id", gameService.GetGameByID)

	game.Post("/", gate, gameService.CreateGame)
	game.Put("/:id", gate, gameService.UpdateGame)
	game.Delete("/:id", gate, gameService.DeleteGame)
}
