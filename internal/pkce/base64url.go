package pkce

import (
	"encoding/base64"
	"fmt"
)

// EncodeBase64URL encodes b with the URL-safe alphabet and no padding.
// Empty input yields an empty string.
func EncodeBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeBase64URL is the inverse of EncodeBase64URL. Padding, whitespace and
// characters from the standard alphabet are rejected with ErrInvalidEncodingFormat.
func DecodeBase64URL(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if !isBase64URLChar(s[i]) {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidEncodingFormat, s[i], i)
		}
	}

	// Strict rejects non-zero trailing bits, so each byte slice has exactly one encoding.
	b, err := base64.RawURLEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncodingFormat, err)
	}
	return b, nil
}

func isBase64URLChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
