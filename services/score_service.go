package services

import (
	"errors"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScoreService struct {
	DB *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{DB: db}
}

// loadLedger scans the flattened score/team join that backs the
// section endpoints and the exports. Soft-deleted scores are excluded
// by the WHERE clause since this bypasses the model callbacks.
func loadLedger(db *gorm.DB) ([]models.LedgerEntry, error) {
	query := `
        SELECT
            s.id AS score_id,
            s.team_id,
            t.name AS team_name,
            t.section_represented AS section,
            s.game,
            s.category,
            s.points,
            s.contributor,
            s.is_group,
            s.created_at
        FROM scores s
        JOIN teams t ON t.id = s.team_id
        WHERE s.deleted_at IS NULL
        ORDER BY s.created_at ASC
    `
	var entries []models.LedgerEntry
	if err := db.Raw(query).Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetScores lists scores, newest first. ?type=player narrows to solo
// entries, ?type=team to group entries.
func (s *ScoreService) GetScores(c *fiber.Ctx) error {
	scoreType := c.Query("type")
	switch scoreType {
	case "", "player", "team":
	default:
		return c.Status(400).JSON(fiber.Map{"error": "type must be player or team"})
	}

	q := s.DB.Preload("Team")
	if scoreType == "player" {
		q = q.Where("is_group = ?", false)
	} else if scoreType == "team" {
		q = q.Where("is_group = ?", true)
	}

	var scores []models.Score
	if err := q.Order("created_at DESC").Find(&scores).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch scores", "details": err.Error()})
	}
	return c.JSON(scores)
}

// CreateScore logs a result. The caller must name a target: team_id
// (or the frontend's camelCase teamId), or player_id from which the
// team is resolved. Validation happens before any write.
func (s *ScoreService) CreateScore(c *fiber.Ctx) error {
	type Req struct {
		TeamID      string   `json:"team_id"`
		TeamIDAlt   string   `json:"teamId"`
		PlayerID    string   `json:"player_id"`
		Game        string   `json:"game"`
		Category    string   `json:"category"`
		Points      *int     `json:"points"`
		Contributor string   `json:"contributor"`
		IsGroup     bool     `json:"isGroup"`
		Members     []string `json:"members"`
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}

	teamID := req.TeamID
	if teamID == "" {
		teamID = req.TeamIDAlt
	}
	if teamID == "" && req.PlayerID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "either player_id or team_id is required"})
	}
	if req.Game == "" {
		return c.Status(400).JSON(fiber.Map{"error": "game is required"})
	}
	if req.Points == nil {
		return c.Status(400).JSON(fiber.Map{"error": "points is required"})
	}

	contributor := req.Contributor

	// Resolve the team through the player when only player_id is given.
	if teamID == "" {
		var player models.Player
		if err := s.DB.First(&player, "id = ?", req.PlayerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(400).JSON(fiber.Map{"error": "player_id not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "DB error fetching player", "details": err.Error()})
		}
		if player.TeamID == nil {
			return c.Status(400).JSON(fiber.Map{"error": "player has no team; pass team_id explicitly"})
		}
		teamID = *player.TeamID
		if contributor == "" {
			contributor = player.FullName
		}
	} else {
		var team models.Team
		if err := s.DB.First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(400).JSON(fiber.Map{"error": "team_id not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "DB error fetching team", "details": err.Error()})
		}
	}

	category := req.Category
	if category != "" {
		category = models.NormalizeCategory(category)
	}

	members := req.Members
	if !req.IsGroup {
		members = []string{} // member list only carries meaning for group scores
	}

	score := &models.Score{
		ID:          uuid.NewString(),
		TeamID:      teamID,
		Game:        req.Game,
		Category:    category,
		Points:      *req.Points,
		Contributor: contributor,
		IsGroup:     req.IsGroup,
		Members:     members,
	}
	if err := s.DB.Create(score).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "DB insert failed", "details": err.Error()})
	}

	s.DB.Preload("Team").First(score, "id = ?", score.ID)
	return c.Status(201).JSON(score)
}

func (s *ScoreService) UpdateScore(c *fiber.Ctx) error {
	type Req struct {
		TeamID      *string   `json:"team_id"`
		Game        *string   `json:"game"`
		Category    *string   `json:"category"`
		Points      *int      `json:"points"`
		Contributor *string   `json:"contributor"`
		IsGroup     *bool     `json:"isGroup"`
		Members     *[]string `json:"members"`
	}

	var score models.Score
	if err := s.DB.First(&score, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "score not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "DB error fetching score", "details": err.Error()})
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}

	if req.TeamID != nil {
		var team models.Team
		if err := s.DB.First(&team, "id = ?", *req.TeamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(400).JSON(fiber.Map{"error": "team_id not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "DB error fetching team", "details": err.Error()})
		}
		score.TeamID = *req.TeamID
	}
	if req.Game != nil {
		if *req.Game == "" {
			return c.Status(400).JSON(fiber.Map{"error": "game cannot be empty"})
		}
		score.Game = *req.Game
	}
	if req.Category != nil {
		score.Category = models.NormalizeCategory(*req.Category)
	}
	if req.Points != nil {
		score.Points = *req.Points
	}
	if req.Contributor != nil {
		score.Contributor = *req.Contributor
	}
	if req.IsGroup != nil {
		score.IsGroup = *req.IsGroup
	}
	if req.Members != nil {
		score.Members = *req.Members
	}
	if !score.IsGroup {
		score.Members = []string{}
	}

	if err := s.DB.Save(&score).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "DB update failed", "details": err.Error()})
	}

	s.DB.Preload("Team").First(&score, "id = ?", score.ID)
	return c.JSON(score)
}

// DeleteScore soft-deletes; the row stays around (and excluded from
// every read) until the retention scheduler purges it.
func (s *ScoreService) DeleteScore(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.Score{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "DB delete failed", "details": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "score not found"})
	}
	return c.JSON(fiber.Map{"message": "score deleted"})
}

// SectionSummary is the per-section rollup for the section_team list:
// the section's ledger rows plus their totals.
type SectionSummary struct {
	Section     string               `json:"section"`
	TotalPoints int                  `json:"total_points"`
	ScoreCount  int                  `json:"score_count"`
	Scores      []models.LedgerEntry `json:"scores"`
}

// SummarizeSections groups ledger rows per represented section,
// keeping first-seen section order.
func SummarizeSections(entries []models.LedgerEntry) []SectionSummary {
	index := make(map[string]*SectionSummary)
	var order []string
	for _, e := range entries {
		sum, ok := index[e.Section]
		if !ok {
			sum = &SectionSummary{Section: e.Section, Scores: make([]models.LedgerEntry, 0, 4)}
			index[e.Section] = sum
			order = append(order, e.Section)
		}
		sum.TotalPoints += e.Points
		sum.ScoreCount++
		sum.Scores = append(sum.Scores, e)
	}

	summaries := make([]SectionSummary, 0, len(order))
	for _, sec := range order {
		summaries = append(summaries, *index[sec])
	}
	return summaries
}

// GetSectionSummaries groups the ledger per represented section. The
// grouping happens in memory — the full ledger for one fair is small.
func (s *ScoreService) GetSectionSummaries(c *fiber.Ctx) error {
	entries, err := loadLedger(s.DB)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load ledger", "details": err.Error()})
	}
	return c.JSON(SummarizeSections(entries))
}

// GetScoresBySectionTeam returns the ledger rows for one section plus
// their summed points.
func (s *ScoreService) GetScoresBySectionTeam(c *fiber.Ctx) error {
	section := c.Params("section_team")
	if section == "" {
		return c.Status(400).JSON(fiber.Map{"error": "section_team is required"})
	}

	entries, err := loadLedger(s.DB)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load ledger", "details": err.Error()})
	}

	matched := make([]models.LedgerEntry, 0)
	total := 0
	for _, e := range entries {
		if e.Section != section {
			continue
		}
		matched = append(matched, e)
		total += e.Points
	}

	return c.JSON(fiber.Map{
		"section":     section,
		"scores":      matched,
		"totalPoints": total,
	})
}

// GetStandings serves the leaderboard. category= and game= narrow the
// score set before aggregation; teams with no remaining scores still
// appear with a zero total.
func (s *ScoreService) GetStandings(c *fiber.Ctx) error {
	filter := ScoreFilter{
		Game: c.Query("game"),
	}
	if cat := c.Query("category"); cat != "" {
		filter.Category = models.NormalizeCategory(cat)
	}

	var teams []models.Team
	if err := s.DB.Order("created_at ASC").Find(&teams).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch teams", "details": err.Error()})
	}

	var scores []models.Score
	if err := s.DB.Order("created_at ASC").Find(&scores).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch scores", "details": err.Error()})
	}

	standings := BuildStandings(teams, FilterScores(scores, filter))
	return c.JSON(standings)
}
