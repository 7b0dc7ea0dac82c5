package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/onlyfix/admin/internal/domain/user"
	"github.com/onlyfix/admin/internal/infrastructure/credentials"
	"github.com/onlyfix/admin/internal/shared/validation"
)

// Login exchanges credentials for a token and stores it with the user's identity.
func (c *Client) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/login", nil, req)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	var result user.LoginResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("login: unmarshal response: %w", err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("login: invalid response from server: missing token")
	}

	var info *credentials.UserInfo
	if result.User != nil {
		info = &credentials.UserInfo{ID: result.User.ID, Name: result.User.Name, Email: result.User.Email}
	}
	if err := c.store.Save(result.Token, info); err != nil {
		return nil, fmt.Errorf("login: save credentials: %w", err)
	}

	c.logger.Infow("logged in", "email", req.Email)
	return &result, nil
}

// Logout revokes the token server-side and always clears the local store.
func (c *Client) Logout(ctx context.Context) error {
	_, reqErr := c.doRequest(ctx, http.MethodPost, "/logout", nil, nil)
	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("logout: clear credentials: %w", err)
	}
	if reqErr != nil {
		c.logger.Warnw("logout request failed, local session cleared anyway", "error", reqErr)
	}
	return nil
}

func (c *Client) CurrentUser(ctx context.Context) (*user.User, error) {
	var u user.User
	if err := c.getResource(ctx, "/user", &u); err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return &u, nil
}

// HealthCheck reports whether the backend answers /api/health with 2xx.
func (c *Client) HealthCheck(ctx context.Context) bool {
	_, err := c.doRequest(ctx, http.MethodGet, "/health", nil, nil)
	return err == nil
}

// ServerVersion returns the version the backend reports on /api/health, or ""
// when it does not report one.
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return "", fmt.Errorf("server version: %w", err)
	}
	var health struct {
		Version string `json:"version"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &health); err != nil {
			return "", fmt.Errorf("server version: unmarshal response: %w", err)
		}
	}
	return health.Version, nil
}
