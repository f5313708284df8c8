// internal/apiclient/auth.go
package apiclient

import (
	"context"
	"net/http"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
)

func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var out models.HealthResponse
	if err := c.getJSON(ctx, "Health check", "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, input models.LoginInput) (*models.TokenResponse, error) {
	var out models.TokenResponse
	if err := c.sendJSON(ctx, "Login", http.MethodPost, "/api/auth/login", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, input models.RegisterInput) (*models.TokenResponse, error) {
	var out models.TokenResponse
	if err := c.sendJSON(ctx, "Registration", http.MethodPost, "/api/auth/register", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the user owning the current bearer token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.getJSON(ctx, "Load profile", "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) (*models.LogoutResponse, error) {
	var out models.LogoutResponse
	if err := c.sendJSON(ctx, "Logout", http.MethodPost, "/api/auth/logout", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Refresh(ctx context.Context) (*models.TokenResponse, error) {
	var out models.TokenResponse
	if err := c.sendJSON(ctx, "Refresh session", http.MethodPost, "/api/auth/refresh", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
