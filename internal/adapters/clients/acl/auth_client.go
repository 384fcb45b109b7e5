package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// Compile-time interface check.
var _ ports.AuthClient = (*AuthClient)(nil)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"
)

type credentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponseDTO struct {
	Token string `json:"token"`
}

// AuthClient talks to the unauthenticated /api/auth endpoints.
type AuthClient struct {
	req *Requester
}

// NewAuthClient creates an AuthClient. Requests carry no bearer token.
func NewAuthClient(client *httpclient.Client, logger *slog.Logger) *AuthClient {
	return &AuthClient{req: NewRequester(client, nil, logger)}
}

// Login exchanges credentials for a bearer token via POST /api/auth/login.
// Rejected credentials surface as domain.ErrUnauthenticated.
func (c *AuthClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, loginPath, credentialsDTO{Username: username, Password: password}, &resp); err != nil {
		return "", err
	}

	token := strings.TrimSpace(resp.Token)
	if token == "" {
		return "", fmt.Errorf("%w: login response carried no token", domain.ErrDecode)
	}
	return token, nil
}

// Register creates an account via POST /api/auth/register. The response
// body is a confirmation message and is not inspected.
func (c *AuthClient) Register(ctx context.Context, username, password string) error {
	return c.req.Do(ctx, http.MethodPost, registerPath, credentialsDTO{Username: username, Password: password}, nil)
}
