package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pkcegen",
	Short: "Generate and verify PKCE code verifiers and challenges",
	Long: `pkcegen produces RFC 7636 code verifiers and S256 code challenges.

Examples:
  # Print a verifier and its challenge
  pkcegen generate

  # Derive the challenge for an existing verifier
  pkcegen challenge dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk

  # Serve the HTTP API and Prometheus metrics
  pkcegen serve`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
