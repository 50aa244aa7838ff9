package api

import (
	"context"
	"net/http"

	"github.com/misterclayt0n/keima/internal/models"
)

type LoginResponse struct {
	User         *models.UserProfile `json:"user"`
	SessionToken string              `json:"session_token"`
	Message      string              `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type meResponse struct {
	User *models.UserProfile `json:"user"`
}

// BearerHeader builds the header set for a single authenticated call.
func BearerHeader(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}

// Me verifies token and returns the user it belongs to.
func (c *Client) Me(ctx context.Context, token string) (*models.UserProfile, error) {
	var out meResponse
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/api/auth/me", BearerHeader(token), nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, &APIError{Status: http.StatusUnauthorized, Message: "missing user"}
	}
	return out.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	in := map[string]string{"email": email, "password": password}
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/api/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*MessageResponse, error) {
	in := map[string]string{"name": name, "email": email, "password": password}
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/api/auth/register", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout asks the backend to invalidate token. The response body is ignored.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, c.baseURL+"/api/auth/logout", BearerHeader(token), nil, nil)
}
