// handlers/player.go
package handlers

import (
	"github.com/geraldsberongoy/cpe-fair-web-sub000/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPlayerRoutes(app *fiber.App, playerService *services.PlayerService, gate fiber.Handler) {
	player := app.Group("/api/player")

	player.Get("/", playerService.GetAllPlayers)
	player.Get("/:id", playerService.GetPlayerByID)

	player.Post("/", gate, playerService.CreatePlayer)
	player.Put("/:id", gate, playerService.UpdatePlayer)
	player.Delete("/:id", gate, playerService.DeletePlayer)
}
