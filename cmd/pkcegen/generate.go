package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pkcegen/internal/pkce"
)

var errChallengeMismatch = errors.New("verifier does not match challenge")

var generateOctets int

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a new code verifier and its S256 challenge",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := pkce.ValidateOctetCount(generateOctets); err != nil {
			return err
		}

		pair, err := pkce.NewGenerator(pkce.NewCryptoSource()).NewPair(generateOctets)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "code_verifier=%s\n", pair.Verifier)
		fmt.Fprintf(out, "code_challenge=%s\n", pair.Challenge)
		fmt.Fprintf(out, "code_challenge_method=%s\n", pair.Method)
		return nil
	},
}

var challengeCmd = &cobra.Command{
	Use:   "challenge <verifier>",
	Short: "Derive the S256 challenge for a verifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		challenge, err := pkce.DeriveChallenge(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), challenge)
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <verifier> <challenge>",
	Short: "Check that a challenge was derived from a verifier",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !pkce.VerifyChallenge(args[0], args[1]) {
			return errChallengeMismatch
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pkcegen version %s\n", version)
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateOctets, "octets", "n", pkce.DefaultOctetCount,
		fmt.Sprintf("random octets to encode (%d-%d)", pkce.MinOctetCount, pkce.MaxOctetCount))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)
}
