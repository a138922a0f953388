package api

import (
	"context"
	"net/http"
	"time"
)

// User is an account on the platform.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Token is the backend's login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a new account. Role is optional; the backend
// defaults it.
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Login exchanges credentials for a bearer token and installs it on the
// client for subsequent requests.
func (c *Client) Login(ctx context.Context, req LoginRequest) (Token, error) {
	var out Token
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return Token{}, err
	}
	c.SetToken(out.AccessToken)
	return out, nil
}

// Register creates a new account. The caller still needs to log in
// afterwards; registration does not return a token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/auth/register", req, &out)
	return out, err
}
