package pkce

import (
	"fmt"
	"math"
)

const (
	// DefaultOctetCount yields a 43 character verifier.
	DefaultOctetCount = 32
	MinOctetCount     = 32
	MaxOctetCount     = 96

	MinVerifierLength = 43
	MaxVerifierLength = 128

	stateOctetCount = 32
)

// Generator produces code verifiers and state values from a RandomSource.
type Generator struct {
	source RandomSource
}

// NewGenerator creates a generator drawing entropy from source.
func NewGenerator(source RandomSource) *Generator {
	return &Generator{source: source}
}

// GenerateVerifier returns the base64url encoding of octetCount random bytes.
//
// The result is only a valid RFC 7636 verifier when octetCount lies in
// [MinOctetCount, MaxOctetCount]; that is the caller's responsibility and is
// not checked here. Use ValidateOctetCount to enforce it.
func (g *Generator) GenerateVerifier(octetCount int) (string, error) {
	b, err := g.source.Generate(octetCount)
	if err != nil {
		return "", err
	}
	return EncodeBase64URL(b), nil
}

// GenerateState returns a random value for the OAuth state parameter.
func (g *Generator) GenerateState() (string, error) {
	return g.GenerateVerifier(stateOctetCount)
}

// GenerateVerifier is GenerateVerifier on a generator backed by crypto/rand.
func GenerateVerifier(octetCount int) (string, error) {
	return NewGenerator(NewCryptoSource()).GenerateVerifier(octetCount)
}

// VerifierLength returns the length of the unpadded base64url encoding of
// octetCount bytes, ceil(octetCount*8/6). Counts whose encoding would not fit
// in an int report math.MaxInt.
func VerifierLength(octetCount int) int {
	if octetCount <= 0 {
		return 0
	}
	if octetCount > math.MaxInt/4*3 {
		return math.MaxInt
	}
	n := octetCount / 3 * 4
	switch octetCount % 3 {
	case 1:
		n += 2
	case 2:
		n += 3
	}
	return n
}

// ValidateOctetCount reports whether octetCount produces a verifier whose
// length is within [MinVerifierLength, MaxVerifierLength].
func ValidateOctetCount(octetCount int) error {
	if octetCount < MinOctetCount || octetCount > MaxOctetCount {
		return fmt.Errorf("%w: %d octets, want %d-%d (%d-%d characters)",
			ErrOctetCountOutOfRange, octetCount, MinOctetCount, MaxOctetCount, MinVerifierLength, MaxVerifierLength)
	}
	return nil
}
