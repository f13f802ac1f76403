// Package auth builds OAuth 2.0 authorization requests protected by PKCE.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2"

	"pkcegen/internal/config"
	"pkcegen/internal/pkce"
)

// ErrNotConfigured is returned when no OAuth client is configured.
var ErrNotConfigured = errors.New("oauth client not configured")

// Session is the client-side state of one authorization attempt.
// Verifier must stay with the client until the token exchange.
type Session struct {
	State     string
	Verifier  string
	Challenge string
	Method    string
	AuthURL   string
	CreatedAt time.Time
}

// ExchangeOptions returns the options to pass to oauth2.Config.Exchange so
// the token request carries the code_verifier.
func (s *Session) ExchangeOptions() []oauth2.AuthCodeOption {
	return []oauth2.AuthCodeOption{oauth2.VerifierOption(s.Verifier)}
}

// AuthClient prepares authorization requests for a single OAuth client.
type AuthClient struct {
	oauth     *oauth2.Config
	generator *pkce.Generator
	logger    *slog.Logger
	now       func() time.Time
}

// NewAuthClient creates a new authorization request builder.
func NewAuthClient(cfg config.OAuthConfig, generator *pkce.Generator, logger *slog.Logger) *AuthClient {
	return &AuthClient{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
			RedirectURL: cfg.RedirectURL,
			Scopes:      cfg.Scopes,
		},
		generator: generator,
		logger:    logger,
		now:       time.Now,
	}
}

// Config returns the underlying oauth2 configuration, for callers performing
// the token exchange themselves.
func (a *AuthClient) Config() *oauth2.Config {
	return a.oauth
}

// Begin starts an authorization attempt: it generates state, a verifier of
// octetCount random bytes and its S256 challenge, and builds the authorization URL.
func (a *AuthClient) Begin(octetCount int) (*Session, error) {
	if a.oauth.ClientID == "" {
		return nil, ErrNotConfigured
	}

	state, err := a.generator.GenerateState()
	if err != nil {
		a.logger.Error("State generation failed", "error", err)
		return nil, fmt.Errorf("generate state: %w", err)
	}

	pair, err := a.generator.NewPair(octetCount)
	if err != nil {
		a.logger.Error("PKCE generation failed", "error", err)
		return nil, fmt.Errorf("generate pkce: %w", err)
	}

	authURL := a.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("code_challenge", pair.Challenge),
		oauth2.SetAuthURLParam("code_challenge_method", pair.Method),
	)

	a.logger.Debug("Authorization request prepared",
		"client_id", a.oauth.ClientID,
		"code_challenge", pair.Challenge)

	return &Session{
		State:     state,
		Verifier:  pair.Verifier,
		Challenge: pair.Challenge,
		Method:    pair.Method,
		AuthURL:   authURL,
		CreatedAt: a.now(),
	}, nil
}
