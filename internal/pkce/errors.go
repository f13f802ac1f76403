package pkce

import "errors"

var (
	// ErrRandomGeneration is returned when the entropy source fails to supply bytes.
	// Callers must abort the authorization attempt rather than fall back to a weaker source.
	ErrRandomGeneration = errors.New("random generation failure")

	// ErrInvalidOctetCount is returned when a non-positive octet count is requested.
	ErrInvalidOctetCount = errors.New("octet count must be positive")

	// ErrOctetCountOutOfRange is returned by ValidateOctetCount when the count would
	// produce a verifier shorter than 43 or longer than 128 characters.
	ErrOctetCountOutOfRange = errors.New("octet count out of range")

	// ErrNonASCIIVerifier is returned when a verifier contains a non-ASCII character.
	// A verifier produced by GenerateVerifier never does, so this indicates a programming error.
	ErrNonASCIIVerifier = errors.New("verifier contains non-ASCII characters")

	// ErrInvalidEncodingFormat is returned when a string is not unpadded base64url.
	ErrInvalidEncodingFormat = errors.New("invalid base64url encoding")
)
