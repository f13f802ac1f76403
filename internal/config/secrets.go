package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultSecretsPath = "/var/run/secrets/pkcegen"
	clientSecretFile   = "client_secret"
)

// tryLoadClientSecret reads the OAuth client secret from a mounted Kubernetes secret file.
// Returns an empty string if the secrets path or file doesn't exist (allows fallback to env vars).
func tryLoadClientSecret() (string, error) {
	secretsPath := os.Getenv("PKCEGEN_SECRETS_PATH")
	if secretsPath == "" {
		secretsPath = defaultSecretsPath
	}

	if _, err := os.Stat(secretsPath); os.IsNotExist(err) {
		return "", nil
	}

	data, err := os.ReadFile(filepath.Join(secretsPath, clientSecretFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
