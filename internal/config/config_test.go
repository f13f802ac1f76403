package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkcegen/internal/pkce"
)

func TestLoadConfig_EnvVars(t *testing.T) {
	t.Setenv("PKCEGEN_SECRETS_PATH", filepath.Join(t.TempDir(), "missing"))
	t.Setenv("PKCEGEN_ADDR", ":9999")
	t.Setenv("PKCEGEN_LOG_LEVEL", "debug")
	t.Setenv("PKCEGEN_LOG_FORMAT", "json")
	t.Setenv("PKCEGEN_OCTETS", "96")
	t.Setenv("PKCEGEN_CLIENT_ID", "client-123")
	t.Setenv("PKCEGEN_CLIENT_SECRET", "from-env")
	t.Setenv("PKCEGEN_AUTH_URL", "https://auth.example.com/authorize")
	t.Setenv("PKCEGEN_TOKEN_URL", "https://auth.example.com/token")
	t.Setenv("PKCEGEN_REDIRECT_URL", "http://localhost:9810/callback")
	t.Setenv("PKCEGEN_SCOPES", "openid, email offline_access")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 96, cfg.OctetCount)
	assert.Equal(t, OAuthConfig{
		ClientID:     "client-123",
		ClientSecret: "from-env",
		AuthURL:      "https://auth.example.com/authorize",
		TokenURL:     "https://auth.example.com/token",
		RedirectURL:  "http://localhost:9810/callback",
		Scopes:       []string{"openid", "email", "offline_access"},
	}, cfg.OAuth)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PKCEGEN_SECRETS_PATH", filepath.Join(t.TempDir(), "missing"))
	for _, key := range []string{"PKCEGEN_ADDR", "PKCEGEN_LOG_LEVEL", "PKCEGEN_LOG_FORMAT", "PKCEGEN_OCTETS", "PKCEGEN_CLIENT_ID", "PKCEGEN_CLIENT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9810", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, pkce.DefaultOctetCount, cfg.OctetCount)
	assert.False(t, cfg.OAuth.Enabled())
	assert.Empty(t, cfg.OAuth.Scopes)
}

func TestLoadConfig_InvalidOctets(t *testing.T) {
	t.Setenv("PKCEGEN_SECRETS_PATH", filepath.Join(t.TempDir(), "missing"))
	t.Setenv("PKCEGEN_OCTETS", "lots")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_SecretFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, clientSecretFile), []byte("  mounted-secret\n"), 0o600))
	t.Setenv("PKCEGEN_SECRETS_PATH", dir)
	t.Setenv("PKCEGEN_CLIENT_SECRET", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mounted-secret", cfg.OAuth.ClientSecret)
}

func TestLoadConfig_SecretDirWithoutFile(t *testing.T) {
	t.Setenv("PKCEGEN_SECRETS_PATH", t.TempDir())
	t.Setenv("PKCEGEN_CLIENT_SECRET", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OAuth.ClientSecret)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{ListenAddr: ":9810", OctetCount: 32}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing listen address", func(t *testing.T) {
		cfg := valid()
		cfg.ListenAddr = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("octets too small", func(t *testing.T) {
		cfg := valid()
		cfg.OctetCount = 31
		assert.ErrorIs(t, cfg.Validate(), pkce.ErrOctetCountOutOfRange)
	})

	t.Run("octets too large", func(t *testing.T) {
		cfg := valid()
		cfg.OctetCount = 97
		assert.ErrorIs(t, cfg.Validate(), pkce.ErrOctetCountOutOfRange)
	})

	t.Run("octets overflowing the length calculation", func(t *testing.T) {
		cfg := valid()
		cfg.OctetCount = 1<<61 + 32
		assert.ErrorIs(t, cfg.Validate(), pkce.ErrOctetCountOutOfRange)
	})

	t.Run("client id without auth url", func(t *testing.T) {
		cfg := valid()
		cfg.OAuth = OAuthConfig{ClientID: "c", RedirectURL: "http://localhost/cb"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("client id without redirect url", func(t *testing.T) {
		cfg := valid()
		cfg.OAuth = OAuthConfig{ClientID: "c", AuthURL: "https://auth.example.com"}
		assert.Error(t, cfg.Validate())
	})
}
