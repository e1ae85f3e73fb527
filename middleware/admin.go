// middleware/admin.go
package middleware

import (
	"strings"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/config"
	"github.com/geraldsberongoy/cpe-fair-web-sub000/services"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// AdminGate protects mutating routes. Two independent strategies, either
// one grants access:
//  1. x-admin-key header equal to the configured shared secret
//  2. Authorization: Bearer <token> that the session verifier accepts
//
// All-or-nothing — there is no per-resource permission model.
func AdminGate(cfg *config.Config, sessions *services.SessionClient) fiber.Handler {
	if cfg.AdminSecret == "" {
		log.Warn("ADMIN_SECRET is not set — x-admin-key authentication is disabled")
	}

	return func(c *fiber.Ctx) error {
		if key := c.Get("x-admin-key"); key != "" && cfg.AdminSecret != "" {
			if key == cfg.AdminSecret {
				return c.Next()
			}
			log.Printf("❌ [ADMIN_GATE] bad admin key for %s", c.Path())
		}

		if auth := c.Get("Authorization"); auth != "" && sessions != nil {
			token := strings.TrimPrefix(auth, "Bearer ")
			if token != "" && token != auth {
				user, err := sessions.VerifyToken(token)
				if err == nil && user != nil && user.ID != "" {
					c.Locals("session_user_id", user.ID)
					return c.Next()
				}
				log.Printf("❌ [ADMIN_GATE] session token rejected for %s: %v", c.Path(), err)
			}
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "admin credentials required",
		})
	}
}
