// handlers/team.go
package handlers

import (
	"github.com/geraldsberongoy/cpe-fair-web-sub000/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTeamRoutes(app *fiber.App, teamService *services.TeamService, gate fiber.Handler) {
	team := app.Group("/api/team")

	// 🔓 Public reads
	team.Get("/", teamService.GetAllTeams)
	team.Get("/:id", teamService.GetTeamByID)

	// 🔐 Admin-gated writes
	team.Post("/", gate, teamService.CreateTeam)
	team.Put("/:id", gate, teamService.UpdateTeam)
	team.Delete("/:id", gate, teamService.DeleteTeam)
}
