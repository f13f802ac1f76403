package pkce

import (
	"crypto/rand"
	"fmt"
	"io"
)

// RandomSource supplies cryptographically secure random bytes.
type RandomSource interface {
	Generate(count int) ([]byte, error)
}

// CryptoSource reads from an operating system CSPRNG.
type CryptoSource struct {
	reader io.Reader
}

// NewCryptoSource creates a source backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{reader: rand.Reader}
}

// NewReaderSource creates a source backed by r. r must be a CSPRNG.
func NewReaderSource(r io.Reader) *CryptoSource {
	return &CryptoSource{reader: r}
}

// Generate returns count fresh random bytes. Output is never retried or padded
// from another source: a failing reader surfaces as ErrRandomGeneration.
func (s *CryptoSource) Generate(count int) ([]byte, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOctetCount, count)
	}

	b := make([]byte, count)
	if _, err := io.ReadFull(s.reader, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomGeneration, err)
	}
	return b, nil
}
