// Package types defines the JSON shapes exchanged over the HTTP API.
package types

// PKCEResponse is returned when a new verifier is generated.
type PKCEResponse struct {
	CodeVerifier        string `json:"code_verifier"`
	CodeChallenge       string `json:"code_challenge"`
	CodeChallengeMethod string `json:"code_challenge_method"`
	CreatedAt           string `json:"created_at"`
}

// ChallengeRequest asks for the challenge of an existing verifier.
type ChallengeRequest struct {
	CodeVerifier string `json:"code_verifier"`
}

// ChallengeResponse carries a derived challenge.
type ChallengeResponse struct {
	CodeChallenge       string `json:"code_challenge"`
	CodeChallengeMethod string `json:"code_challenge_method"`
}

// VerifyRequest asks whether a verifier matches a challenge.
type VerifyRequest struct {
	CodeVerifier  string `json:"code_verifier"`
	CodeChallenge string `json:"code_challenge"`
}

// VerifyResponse reports the result of a verification.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// AuthorizeResponse describes a prepared authorization request.
type AuthorizeResponse struct {
	AuthorizationURL    string `json:"authorization_url"`
	State               string `json:"state"`
	CodeVerifier        string `json:"code_verifier"`
	CodeChallenge       string `json:"code_challenge"`
	CodeChallengeMethod string `json:"code_challenge_method"`
	CreatedAt           string `json:"created_at"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
