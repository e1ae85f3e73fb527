// handlers/export.go
package handlers

import (
	"github.com/geraldsberongoy/cpe-fair-web-sub000/services"

	"github.com/gofiber/fiber/v2"
)

func SetupExportRoutes(app *fiber.App, exportService *services.ExportService, gate fiber.Handler) {
	export := app.Group("/api/export")

	export.Get("/scores", exportService.ExportScores)
	export.Get("/ledger", exportService.ExportLedger)

	export.Post("/scores/archive", gate, exportService.ArchiveScores)
}
