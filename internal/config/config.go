// Package config handles configuration loading from .env files, environment variables and mounted secrets.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"pkcegen/internal/pkce"
)

// Config holds all configuration for pkcegen.
type Config struct {
	// Server configuration
	ListenAddr string

	// Verifier entropy in octets; 32 yields the minimum 43 character verifier.
	OctetCount int

	// Logging configuration
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json

	OAuth OAuthConfig
}

// OAuthConfig describes the authorization server used to build authorization requests.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	RedirectURL  string
	Scopes       []string
}

// Enabled reports whether an OAuth client has been configured.
func (o OAuthConfig) Enabled() bool {
	return o.ClientID != ""
}

// LoadConfig loads configuration. Values from a .env file in the working
// directory are applied first without overriding variables already set in the
// environment; the client secret is read from mounted secrets when available.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		// Set defaults
		ListenAddr: ":9810",
		OctetCount: pkce.DefaultOctetCount,
		LogLevel:   "info",
		LogFormat:  "text",
	}

	if addr := os.Getenv("PKCEGEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	if level := os.Getenv("PKCEGEN_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if format := os.Getenv("PKCEGEN_LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	if octets := os.Getenv("PKCEGEN_OCTETS"); octets != "" {
		n, err := strconv.Atoi(octets)
		if err != nil {
			return nil, fmt.Errorf("parse PKCEGEN_OCTETS: %w", err)
		}
		cfg.OctetCount = n
	}

	cfg.OAuth = OAuthConfig{
		ClientID:    os.Getenv("PKCEGEN_CLIENT_ID"),
		AuthURL:     os.Getenv("PKCEGEN_AUTH_URL"),
		TokenURL:    os.Getenv("PKCEGEN_TOKEN_URL"),
		RedirectURL: os.Getenv("PKCEGEN_REDIRECT_URL"),
		Scopes:      splitScopes(os.Getenv("PKCEGEN_SCOPES")),
	}

	secret, err := tryLoadClientSecret()
	if err != nil {
		return nil, fmt.Errorf("load client secret: %w", err)
	}
	if secret != "" {
		cfg.OAuth.ClientSecret = secret
	} else {
		cfg.OAuth.ClientSecret = os.Getenv("PKCEGEN_CLIENT_SECRET")
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen address is required (set PKCEGEN_ADDR)")
	}
	if err := pkce.ValidateOctetCount(c.OctetCount); err != nil {
		return fmt.Errorf("PKCEGEN_OCTETS: %w", err)
	}
	if c.OAuth.Enabled() {
		if c.OAuth.AuthURL == "" {
			return errors.New("auth URL is required when a client ID is set (set PKCEGEN_AUTH_URL)")
		}
		if c.OAuth.RedirectURL == "" {
			return errors.New("redirect URL is required when a client ID is set (set PKCEGEN_REDIRECT_URL)")
		}
	}
	return nil
}

// splitScopes accepts space or comma separated scopes.
func splitScopes(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})
}
