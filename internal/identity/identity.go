// Package identity resolves bearer tokens into users of the external identity provider.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/jwt"
	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
)

// ErrInvalidToken is returned for tokens the provider does not accept.
var ErrInvalidToken = errors.New("Invalid or expired token")

// User is the identity resolved from a bearer token.
type User struct {
	ID       uuid.UUID
	Email    string
	Username string // From user metadata; may be empty
}

// Config holds identity provider settings.
type Config struct {
	URL       string // Provider base URL, e.g. https://xyz.supabase.co
	APIKey    string // Sent as the apikey header on token exchange
	JWTSecret string // Enables local verification when set
}

// ClaimsParser verifies tokens locally.
type ClaimsParser interface {
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Provider validates tokens locally with the project secret and falls back to the
// provider's /auth/v1/user endpoint.
type Provider struct {
	cfg    Config
	local  ClaimsParser
	client *http.Client
}

// NewProvider creates a Provider. local may be nil to always ask the provider.
func NewProvider(cfg Config, local ClaimsParser) *Provider {
	return &Provider{
		cfg:    cfg,
		local:  local,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (p *Provider) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return jwt.GetTokenFromRequest(r)
}

// Authenticate exchanges a token for a user identity.
func (p *Provider) Authenticate(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	if p.local != nil && p.cfg.JWTSecret != "" {
		claims, err := p.local.GetClaims(ctx, token)
		if err == nil {
			return &User{ID: claims.UserID, Email: claims.Email, Username: claims.Username()}, nil
		}
		logger.Log.Debugw("local token verification failed", "error", err)
	}

	if p.cfg.URL == "" {
		return nil, ErrInvalidToken
	}

	return p.fetchUser(ctx, token)
}

type providerUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

func (p *Provider) fetchUser(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(p.cfg.URL, "/")+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		logger.Log.Errorw("identity provider request failed", "error", err)
		return nil, fmt.Errorf("identity provider unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Log.Infow("identity provider rejected token", "status", resp.StatusCode, "body", string(body))
		return nil, ErrInvalidToken
	}

	var pu providerUser
	if err := json.NewDecoder(resp.Body).Decode(&pu); err != nil {
		return nil, fmt.Errorf("decode identity provider user: %w", err)
	}

	id, err := uuid.Parse(pu.ID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user := &User{ID: id, Email: pu.Email}
	if v, ok := pu.UserMetadata["username"].(string); ok {
		user.Username = v
	}
	return user, nil
}
