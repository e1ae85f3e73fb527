package services

import (
	"errors"
	"fmt"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameService struct {
	DB *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{DB: db}
}

// GameFilter is the explicit shape of the game list query parameters.
// Empty / nil fields mean "no filter".
type GameFilter struct {
	Category string
	IsGroup  *bool
	SortBy   string // name | category | created_at
	Order    string // asc | desc
}

// ParseGameFilter validates the raw query parameters. sortBy and order
// are whitelisted because they end up in an ORDER BY clause.
func ParseGameFilter(category, sortBy, order, isGroup string) (GameFilter, error) {
	f := GameFilter{SortBy: "created_at", Order: "asc"}

	if category != "" {
		cat := models.NormalizeCategory(category)
		if !models.ValidCategory(cat) {
			return f, fmt.Errorf("unknown category %q", category)
		}
		f.Category = cat
	}

	switch sortBy {
	case "":
	case "name", "category", "created_at":
		f.SortBy = sortBy
	default:
		return f, fmt.Errorf("sortBy must be one of name, category, created_at")
	}

	switch order {
	case "":
	case "asc", "desc":
		f.Order = order
	default:
		return f, fmt.Errorf("order must be asc or desc")
	}

	switch isGroup {
	case "":
	case "true":
		v := true
		f.IsGroup = &v
	case "false":
		v := false
		f.IsGroup = &v
	default:
		return f, fmt.Errorf("isGroup must be true or false")
	}

	return f, nil
}

func (s *GameService) GetAllGames(c *fiber.Ctx) error {
	filter, err := ParseGameFilter(c.Query("category"), c.Query("sortBy"), c.Query("order"), c.Query("isGroup"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	q := s.DB.Model(&models.Game{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.IsGroup != nil {
		q = q.Where("is_group = ?", *filter.IsGroup)
	}

	var games []models.Game
	if err := q.Order(filter.SortBy + " " + filter.Order).Find(&games).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch games", "details": err.Error()})
	}
	return c.JSON(games)
}

func (s *GameService) GetGameByID(c *fiber.Ctx) error {
	var game models.Game
	if err := s.DB.First(&game, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "game not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB error fetching game", "details": err.Error()})
	}
	return c.JSON(game)
}

func (s *GameService) CreateGame(c *fiber.Ctx) error {
	type Req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		IsGroup  bool   `json:"is_group"`
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	category := models.NormalizeCategory(req.Category)
	if !models.ValidCategory(category) {
		return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("unknown category %q", req.Category)})
	}

	game := &models.Game{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Category: category,
		IsGroup:  req.IsGroup,
	}
	if err := s.DB.Create(game).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{"error": "a game with that name already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB insert failed", "details": err.Error()})
	}
	return c.Status(201).JSON(game)
}

func (s *GameService) UpdateGame(c *fiber.Ctx) error {
	type Req struct {
		Name     *string `json:"name"`
		Category *string `json:"category"`
		IsGroup  *bool   `json:"is_group"`
	}

	var game models.Game
	if err := s.DB.First(&game, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "game not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB error fetching game", "details": err.Error()})
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}

	if req.Name != nil {
		if *req.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "name cannot be empty"})
		}
		game.Name = *req.Name
	}
	if req.Category != nil {
		category := models.NormalizeCategory(*req.Category)
		if !models.ValidCategory(category) {
			return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("unknown category %q", *req.Category)})
		}
		game.Category = category
	}
	if req.IsGroup != nil {
		game.IsGroup = *req.IsGroup
	}

	if err := s.DB.Save(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{"error": "a game with that name already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB update failed", "details": err.Error()})
	}
	return c.JSON(game)
}

func (s *GameService) DeleteGame(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.Game{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "DB delete failed", "details": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "game not found"})
	}
	return c.JSON(fiber.Map{"message": "game deleted"})
}
