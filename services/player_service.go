package services

import (
	"errors"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlayerService struct {
	DB *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{DB: db}
}

// ListMeta is the pagination envelope for the player registry.
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// BuildMeta clamps page/limit to sane values and derives totalPages.
func BuildMeta(total int64, page, limit int) ListMeta {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return ListMeta{Total: total, Page: page, Limit: limit, TotalPages: pages}
}

// GetAllPlayers lists the player registry, optionally filtered by the
// name of the team they belong to. This is the one paginated list
// endpoint — the registry can outgrow the other collections.
func (s *PlayerService) GetAllPlayers(c *fiber.Ctx) error {
	teamName := c.Query("team_name")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", defaultPageLimit)

	q := s.DB.Model(&models.Player{})
	if teamName != "" {
		q = q.Joins("JOIN teams ON teams.id = players.team_id").
			Where("teams.name = ?", teamName)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to count players", "details": err.Error()})
	}

	meta := BuildMeta(total, page, limit)

	var players []models.Player
	err := q.Preload("Team").
		Order("players.created_at ASC").
		Offset((meta.Page - 1) * meta.Limit).
		Limit(meta.Limit).
		Find(&players).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch players", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"data": players, "meta": meta})
}

func (s *PlayerService) GetPlayerByID(c *fiber.Ctx) error {
	var player models.Player
	if err := s.DB.Preload("Team").First(&player, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "player not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB error fetching player", "details": err.Error()})
	}
	return c.JSON(player)
}

func (s *PlayerService) CreatePlayer(c *fiber.Ctx) error {
	type Req struct {
		FullName string  `json:"full_name"`
		CYS      string  `json:"cys"`
		TeamID   *string `json:"team_id"`
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.FullName == "" || req.CYS == "" {
		return c.Status(400).JSON(fiber.Map{"error": "full_name and cys are required"})
	}

	if req.TeamID != nil && *req.TeamID != "" {
		var team models.Team
		if err := s.DB.First(&team, "id = ?", *req.TeamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(400).JSON(fiber.Map{"error": "team_id not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "DB error fetching team", "details": err.Error()})
		}
	} else {
		req.TeamID = nil
	}

	player := &models.Player{
		ID:       uuid.NewString(),
		FullName: req.FullName,
		CYS:      req.CYS,
		TeamID:   req.TeamID,
	}
	if err := s.DB.Create(player).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{"error": "player already registered"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB insert failed", "details": err.Error()})
	}

	s.DB.Preload("Team").First(player, "id = ?", player.ID)
	return c.Status(201).JSON(player)
}

func (s *PlayerService) UpdatePlayer(c *fiber.Ctx) error {
	type Req struct {
		FullName *string `json:"full_name"`
		CYS      *string `json:"cys"`
		TeamID   *string `json:"team_id"`
	}

	var player models.Player
	if err := s.DB.First(&player, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "player not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB error fetching player", "details": err.Error()})
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}

	if req.FullName != nil {
		if *req.FullName == "" {
			return c.Status(400).JSON(fiber.Map{"error": "full_name cannot be empty"})
		}
		player.FullName = *req.FullName
	}
	if req.CYS != nil {
		if *req.CYS == "" {
			return c.Status(400).JSON(fiber.Map{"error": "cys cannot be empty"})
		}
		player.CYS = *req.CYS
	}
	if req.TeamID != nil {
		if *req.TeamID == "" {
			player.TeamID = nil // unassign
		} else {
			var team models.Team
			if err := s.DB.First(&team, "id = ?", *req.TeamID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.Status(400).JSON(fiber.Map{"error": "team_id not found"})
				}
				return c.Status(500).JSON(fiber.Map{"error": "DB error fetching team", "details": err.Error()})
			}
			player.TeamID = req.TeamID
		}
	}

	if err := s.DB.Save(&player).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "DB update failed", "details": err.Error()})
	}

	s.DB.Preload("Team").First(&player, "id = ?", player.ID)
	return c.JSON(player)
}

func (s *PlayerService) DeletePlayer(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.Player{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return c.Status(400).JSON(fiber.Map{"error": "player is still referenced; remove dependents first"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB delete failed", "details": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "player not found"})
	}
	return c.JSON(fiber.Map{"message": "player deleted"})
}
