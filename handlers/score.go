// handlers/score.go
package handlers

import (
	"github.com/geraldsberongoy/cpe-fair-web-sub000/services"

	"github.com/gofiber/fiber/v2"
)

func SetupScoreRoutes(app *fiber.App, scoreService *services.ScoreService, gate fiber.Handler) {
	score := app.Group("/api/score")

	// 🔓 Public reads — register static segments before the :id routes
	score.Get("/", scoreService.GetScores)
	score.Get("/standings", scoreService.GetStandings)
	score.Get("/section_team", scoreService.GetSectionSummaries)
	score.Get("/section_team/:section_team", scoreService.GetScoresBySectionTeam)

	// 🔐 Admin-gated writes
	score.Post("/", gate, scoreService.CreateScore)
	score.Put("/:id", gate, scoreService.UpdateScore)
	score.Delete("/:id", gate, scoreService.DeleteScore)
}
