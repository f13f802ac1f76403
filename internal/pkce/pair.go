// Package pkce implements Proof Key for Code Exchange (RFC 7636) verifier
// generation and S256 challenge derivation.
//
// Typical use in an authorization flow:
//
//	verifier, err := pkce.GenerateVerifier(pkce.DefaultOctetCount)
//	challenge, err := pkce.DeriveChallenge(verifier)
//
// The challenge is sent with code_challenge_method=S256 in the authorization
// request; the verifier stays with the client until the token exchange.
package pkce

// Pair is a verifier together with the challenge derived from it.
type Pair struct {
	Verifier  string
	Challenge string
	Method    string
}

// NewPair generates a verifier of octetCount random bytes and its S256 challenge.
func (g *Generator) NewPair(octetCount int) (*Pair, error) {
	verifier, err := g.GenerateVerifier(octetCount)
	if err != nil {
		return nil, err
	}

	challenge, err := DeriveChallenge(verifier)
	if err != nil {
		return nil, err
	}

	return &Pair{
		Verifier:  verifier,
		Challenge: challenge,
		Method:    MethodS256,
	}, nil
}
