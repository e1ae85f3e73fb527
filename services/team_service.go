package services

import (
	"errors"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamService struct {
	DB *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{DB: db}
}

func (s *TeamService) GetAllTeams(c *fiber.Ctx) error {
	var teams []models.Team
	if err := s.DB.Order("created_at ASC").Find(&teams).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch teams", "details": err.Error()})
	}
	return c.JSON(teams)
}

func (s *TeamService) GetTeamByID(c *fiber.Ctx) error {
	var team models.Team
	if err := s.DB.First(&team, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "team not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB error fetching team", "details": err.Error()})
	}
	return c.JSON(team)
}

func (s *TeamService) CreateTeam(c *fiber.Ctx) error {
	type Req struct {
		Name               string `json:"name"`
		Color              string `json:"color"`
		SectionRepresented string `json:"section_represented"`
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	team := &models.Team{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Color:              req.Color,
		SectionRepresented: req.SectionRepresented,
	}
	if err := s.DB.Create(team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{"error": "a team with that name already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB insert failed", "details": err.Error()})
	}
	return c.Status(201).JSON(team)
}

func (s *TeamService) UpdateTeam(c *fiber.Ctx) error {
	type Req struct {
		Name               *string `json:"name"`
		Color              *string `json:"color"`
		SectionRepresented *string `json:"section_represented"`
	}

	var team models.Team
	if err := s.DB.First(&team, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "team not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB error fetching team", "details": err.Error()})
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}

	if req.Name != nil {
		if *req.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "name cannot be empty"})
		}
		team.Name = *req.Name
	}
	if req.Color != nil {
		team.Color = *req.Color
	}
	if req.SectionRepresented != nil {
		team.SectionRepresented = *req.SectionRepresented
	}

	if err := s.DB.Save(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{"error": "a team with that name already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB update failed", "details": err.Error()})
	}
	return c.JSON(team)
}

func (s *TeamService) DeleteTeam(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.Team{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return c.Status(400).JSON(fiber.Map{
				"error": "team still has players or scores recorded; remove them first",
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB delete failed", "details": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "team not found"})
	}
	return c.JSON(fiber.Map{"message": "team deleted"})
}
