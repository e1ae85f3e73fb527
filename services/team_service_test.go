package services

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Deleting a team that still has players or scores must be refused
// outright; the restrict constraint surfaces as a 400, never a 500.
func TestDeleteTeamWithDependentsRefused(t *testing.T) {
	svc := NewTeamService(openFailingDB(t, gorm.ErrForeignKeyViolated))
	app := fiber.New()
	app.Delete("/api/team/:id", svc.DeleteTeam)

	req := httptest.NewRequest("DELETE", "/api/team/t1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "remove them first")
}

func TestDeleteTeamDBFailureIs500(t *testing.T) {
	svc := NewTeamService(openFailingDB(t, gorm.ErrInvalidTransaction))
	app := fiber.New()
	app.Delete("/api/team/:id", svc.DeleteTeam)

	req := httptest.NewRequest("DELETE", "/api/team/t1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
