package services

import (
	"github.com/geraldsberongoy/cpe-fair-web-sub000/config"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// AuthService backs the admin console login form. The server keeps no
// session state — logging in just confirms the secret so the frontend
// can start sending it on mutating requests.
type AuthService struct {
	Cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{Cfg: cfg}
}

func (s *AuthService) Login(c *fiber.Ctx) error {
	type Req struct {
		Secret string `json:"secret"`
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}

	if s.Cfg.AdminSecret == "" || req.Secret != s.Cfg.AdminSecret {
		log.Printf("❌ [AUTH] failed admin login from %s", c.IP())
		return c.Status(401).JSON(fiber.Map{"error": "Invalid secret"})
	}

	return c.JSON(fiber.Map{"message": "Authenticated"})
}

// Logout is a stateless no-op kept for frontend symmetry.
func (s *AuthService) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out"})
}
