package services

import (
	"fmt"
	"time"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/config"
	"github.com/geraldsberongoy/cpe-fair-web-sub000/models"
	"github.com/geraldsberongoy/cpe-fair-web-sub000/utils"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportService turns the ledger into downloadable reports.
type ExportService struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewExportService(db *gorm.DB, cfg *config.Config) *ExportService {
	return &ExportService{DB: db, Cfg: cfg}
}

// BuildWorkbook renders the master ledger and the standings into a
// two-sheet workbook.
func BuildWorkbook(eventName string, entries []models.LedgerEntry, standings []TeamStanding) (*excelize.File, error) {
	f := excelize.NewFile()

	const ledgerSheet = "Ledger"
	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return nil, err
	}

	header := []interface{}{"Team", "Section", "Game", "Category", "Points", "Contributor", "Group", "Logged At"}
	if err := f.SetSheetRow(ledgerSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			e.TeamName,
			e.Section,
			e.Game,
			e.Category,
			e.Points,
			e.Contributor,
			e.IsGroup,
			e.CreatedAt.Format(time.RFC3339),
		}
		if err := f.SetSheetRow(ledgerSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const standingsSheet = "Standings"
	idx, err := f.NewSheet(standingsSheet)
	if err != nil {
		return nil, err
	}
	sHeader := []interface{}{"Rank", "Team", "Section", "Total Points", "Top Contributor"}
	if err := f.SetSheetRow(standingsSheet, "A1", &sHeader); err != nil {
		return nil, err
	}
	for i, st := range standings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		top := ""
		if st.TopContributor != nil {
			top = st.TopContributor.Contributor
		}
		row := []interface{}{i + 1, st.Team.Name, st.Team.SectionRepresented, st.TotalPoints, top}
		if err := f.SetSheetRow(standingsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(idx)

	if styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(ledgerSheet, 1, 1, styleID)
		_ = f.SetRowStyle(standingsSheet, 1, 1, styleID)
	}

	if eventName != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: eventName + " score ledger"}); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (s *ExportService) buildExport() (*excelize.File, error) {
	entries, err := loadLedger(s.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	var teams []models.Team
	if err := s.DB.Order("created_at ASC").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}
	var scores []models.Score
	if err := s.DB.Order("created_at ASC").Find(&scores).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch scores: %w", err)
	}

	return BuildWorkbook(s.Cfg.EventName, entries, BuildStandings(teams, scores))
}

// ExportScores streams the workbook as a spreadsheet attachment.
func (s *ExportService) ExportScores(c *fiber.Ctx) error {
	f, err := s.buildExport()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to render workbook", "details": err.Error()})
	}

	filename := utils.ExportFilename(s.Cfg.EventName, time.Now())
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// ExportLedger serves the flattened ledger view as JSON.
func (s *ExportService) ExportLedger(c *fiber.Ctx) error {
	entries, err := loadLedger(s.DB)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load ledger", "details": err.Error()})
	}

	total := 0
	for _, e := range entries {
		total += e.Points
	}

	return c.JSON(fiber.Map{
		"data":        entries,
		"total":       len(entries),
		"totalPoints": total,
	})
}

// ArchiveScores renders the workbook and stores it in the archive
// bucket, responding with the object URL. 503 when R2 is unset.
func (s *ExportService) ArchiveScores(c *fiber.Ctx) error {
	if !utils.R2Enabled() {
		return c.Status(503).JSON(fiber.Map{"error": "export archive is not configured"})
	}

	f, err := s.buildExport()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to render workbook", "details": err.Error()})
	}

	key := "exports/" + utils.ExportFilename(s.Cfg.EventName, time.Now())
	url, err := utils.UploadBytesToR2(buf.Bytes(), key, xlsxContentType)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to archive export", "details": err.Error()})
	}

	log.Printf("✅ archived score export to %s", key)
	return c.Status(201).JSON(fiber.Map{"url": url, "key": key})
}
