package pkce

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
)

// MethodS256 is the code_challenge_method for SHA-256 challenges.
const MethodS256 = "S256"

// DeriveChallenge computes BASE64URL(SHA256(ASCII(verifier))).
func DeriveChallenge(verifier string) (string, error) {
	for i, r := range verifier {
		if r > 0x7f {
			return "", fmt.Errorf("%w: %q at offset %d", ErrNonASCIIVerifier, r, i)
		}
	}

	sum := sha256.Sum256([]byte(verifier))
	return EncodeBase64URL(sum[:]), nil
}

// VerifyChallenge reports whether challenge was derived from verifier.
// The comparison runs in constant time.
func VerifyChallenge(verifier, challenge string) bool {
	if verifier == "" || challenge == "" {
		return false
	}
	computed, err := DeriveChallenge(verifier)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(challenge)) == 1
}
