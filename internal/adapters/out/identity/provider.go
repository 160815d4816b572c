// Package identity implements the IdentityProvider port against a
// GoTrue-compatible authentication service. The service owns credentials
// and sessions; this adapter only exchanges tokens and manages accounts
// through the service's HTTP API.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const requestTimeout = 10 * time.Second

// Provider talks to a GoTrue-compatible identity service. Access tokens
// are verified locally with the shared JWT secret; account management
// goes through the service's admin API with the service key.
type Provider struct {
	baseURL    string
	serviceKey string
	jwtSecret  []byte
	client     *http.Client
	logger     *slog.Logger
}

// NewProvider creates a provider for the service at baseURL.
func NewProvider(baseURL, serviceKey, jwtSecret string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		jwtSecret:  []byte(jwtSecret),
		client:     &http.Client{Timeout: requestTimeout},
		logger:     logger.With("component", "identity_provider"),
	}
}

// accessClaims is the subset of the session token's claims this
// application reads.
type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// CurrentUser verifies the access token locally and returns the session
// subject. Any parse or validation failure maps to an authentication
// error; the caller never learns which check failed.
func (p *Provider) CurrentUser(_ context.Context, accessToken string) (ports.IdentityUser, error) {
	if accessToken == "" {
		return ports.IdentityUser{}, errs.NewAuthenticationRequiredError()
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return p.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		p.logger.Debug("token verification failed", "error", err)
		return ports.IdentityUser{}, errs.NewAuthenticationRequiredErrorWithCause(err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.IdentityUser{}, errs.NewAuthenticationRequiredErrorWithCause(err)
	}

	return ports.IdentityUser{ID: id, Email: claims.Email}, nil
}

// userPayload is the identity service's user representation.
type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// signupResponse covers both response shapes GoTrue uses: a bare user
// object, or a session wrapping one.
type signupResponse struct {
	userPayload
	User *userPayload `json:"user"`
}

func (r signupResponse) user() userPayload {
	if r.User != nil {
		return *r.User
	}
	return r.userPayload
}

// SignUp registers a new account (self-service endpoint).
func (p *Provider) SignUp(ctx context.Context, email, password string) (ports.IdentityUser, error) {
	body := map[string]string{"email": email, "password": password}

	var resp signupResponse
	if err := p.post(ctx, "/signup", "", body, &resp); err != nil {
		return ports.IdentityUser{}, err
	}

	return toIdentityUser(resp.user())
}

// SignOut invalidates the session behind the access token.
func (p *Provider) SignOut(ctx context.Context, accessToken string) error {
	return p.post(ctx, "/logout", accessToken, nil, nil)
}

// CreateUser creates a confirmed account through the admin API.
func (p *Provider) CreateUser(ctx context.Context, email, password string) (ports.IdentityUser, error) {
	body := map[string]any{
		"email":         email,
		"password":      password,
		"email_confirm": true,
	}

	var resp userPayload
	if err := p.post(ctx, "/admin/users", p.serviceKey, body, &resp); err != nil {
		return ports.IdentityUser{}, err
	}

	return toIdentityUser(resp)
}

// DeleteUser removes an account through the admin API. Deleting an
// unknown user fails, so a repeated delete cannot look successful.
func (p *Provider) DeleteUser(ctx context.Context, id kernel.UUID) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, p.baseURL+"/admin/users/"+id.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.serviceKey)

	return p.do(req, nil)
}

// post sends a JSON request, authorizing with token when non-empty, and
// decodes the response into out when out is non-nil.
func (p *Provider) post(ctx context.Context, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return p.do(req, out)
}

func (p *Provider) do(req *http.Request, out any) error {
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		p.logger.Warn("identity service error",
			"path", req.URL.Path, "status", resp.StatusCode)
		return fmt.Errorf("identity service %s: status %d: %s",
			req.URL.Path, resp.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func toIdentityUser(payload userPayload) (ports.IdentityUser, error) {
	id, err := kernel.UUIDFromString(payload.ID)
	if err != nil {
		return ports.IdentityUser{}, fmt.Errorf("identity service returned invalid user id: %w", err)
	}
	return ports.IdentityUser{ID: id, Email: payload.Email}, nil
}
