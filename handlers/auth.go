// handlers/auth.go
package handlers

import (
	"github.com/geraldsberongoy/cpe-fair-web-sub000/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, authService *services.AuthService) {
	auth := app.Group("/api/auth")

	auth.Post("/login", authService.Login)
	auth.Post("/logout", authService.Logout)
}
