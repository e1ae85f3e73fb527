package services

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(secret string) *fiber.App {
	svc := NewAuthService(&config.Config{AdminSecret: secret})
	app := fiber.New()
	app.Post("/api/auth/login", svc.Login)
	app.Post("/api/auth/logout", svc.Logout)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestLoginWithCorrectSecret(t *testing.T) {
	app := newAuthApp("s3cret")
	status, body := postJSON(t, app, "/api/auth/login", `{"secret": "s3cret"}`)
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "Authenticated")
}

func TestLoginWithWrongSecret(t *testing.T) {
	app := newAuthApp("s3cret")
	status, body := postJSON(t, app, "/api/auth/login", `{"secret": "guess"}`)
	assert.Equal(t, 401, status)
	assert.Contains(t, body, "Invalid secret")
}

func TestLoginRejectedWhenNoSecretConfigured(t *testing.T) {
	// empty configured secret must not match an empty submitted one
	app := newAuthApp("")
	status, _ := postJSON(t, app, "/api/auth/login", `{"secret": ""}`)
	assert.Equal(t, 401, status)
}

func TestLogoutIsStatelessOK(t *testing.T) {
	app := newAuthApp("s3cret")
	status, _ := postJSON(t, app, "/api/auth/logout", `{}`)
	assert.Equal(t, 200, status)
}
