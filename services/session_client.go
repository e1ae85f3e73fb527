// services/session_client.go
package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/utils"

	log "github.com/sirupsen/logrus"
)

// SessionClient verifies bearer tokens against the hosted auth
// service. Any 200 response carrying a user id counts as a valid
// session — there is no role check beyond "has a session".
type SessionClient struct {
	BaseURL    string
	ServiceKey string
	Client     *http.Client
}

type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

func NewSessionClient(baseURL, serviceKey string) *SessionClient {
	return &SessionClient{
		BaseURL:    baseURL,
		ServiceKey: serviceKey,
		Client:     utils.HTTPClient,
	}
}

// VerifyToken calls /auth/v1/user with the caller's access token.
func (c *SessionClient) VerifyToken(accessToken string) (*SessionUser, error) {
	url := fmt.Sprintf("%s/auth/v1/user", c.BaseURL)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if c.ServiceKey != "" {
		req.Header.Set("apikey", c.ServiceKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.Printf("session verifier returned %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("session verification failed: %d", resp.StatusCode)
	}

	var user SessionUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("session verifier returned no user")
	}

	return &user, nil
}
