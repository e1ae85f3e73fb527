package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/config"
	"github.com/geraldsberongoy/cpe-fair-web-sub000/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fake session verifier: accepts exactly one bearer token
func newSessionStub(t *testing.T, goodToken string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+goodToken {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid token"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"user-1","email":"admin@example.com"}`))
	}))
}

func newGatedApp(cfg *config.Config, sessions *services.SessionClient) *fiber.App {
	app := fiber.New()
	app.Post("/api/team", AdminGate(cfg, sessions), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})
	return app
}

func TestAdminGate(t *testing.T) {
	stub := newSessionStub(t, "valid-session-token")
	defer stub.Close()

	cfg := &config.Config{AdminSecret: "topsecret"}
	sessions := services.NewSessionClient(stub.URL, "service-key")
	app := newGatedApp(cfg, sessions)

	tests := []struct {
		name       string
		setup      func(*http.Request)
		wantStatus int
	}{
		{"no credentials", func(r *http.Request) {}, 401},
		{"correct admin key", func(r *http.Request) { r.Header.Set("x-admin-key", "topsecret") }, 200},
		{"wrong admin key", func(r *http.Request) { r.Header.Set("x-admin-key", "nope") }, 401},
		{"valid bearer session", func(r *http.Request) { r.Header.Set("Authorization", "Bearer valid-session-token") }, 200},
		{"invalid bearer session", func(r *http.Request) { r.Header.Set("Authorization", "Bearer expired") }, 401},
		{"authorization without bearer prefix", func(r *http.Request) { r.Header.Set("Authorization", "valid-session-token") }, 401},
		{"wrong key but valid bearer", func(r *http.Request) {
			r.Header.Set("x-admin-key", "nope")
			r.Header.Set("Authorization", "Bearer valid-session-token")
		}, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/team", nil)
			tt.setup(req)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAdminGateEmptySecretNeverMatches(t *testing.T) {
	app := newGatedApp(&config.Config{AdminSecret: ""}, nil)

	req := httptest.NewRequest("POST", "/api/team", nil)
	req.Header.Set("x-admin-key", "")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
