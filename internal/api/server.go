// Package api exposes PKCE generation and verification over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pkcegen/internal/auth"
	"pkcegen/internal/collector"
	"pkcegen/internal/datecodec"
	"pkcegen/internal/pkce"
	"pkcegen/internal/types"
)

const maxBodyBytes = 4096

// Server handles PKCE HTTP requests.
type Server struct {
	generator  *pkce.Generator
	authClient *auth.AuthClient // nil when no OAuth client is configured
	collector  *collector.PKCECollector
	dates      *datecodec.Codec
	logger     *slog.Logger
	octetCount int
	now        func() time.Time
}

// Options configures a Server.
type Options struct {
	Generator  *pkce.Generator
	AuthClient *auth.AuthClient
	Collector  *collector.PKCECollector
	Dates      *datecodec.Codec
	Logger     *slog.Logger
	OctetCount int
}

// NewServer creates a new API server.
func NewServer(opts Options) *Server {
	return &Server{
		generator:  opts.Generator,
		authClient: opts.AuthClient,
		collector:  opts.Collector,
		dates:      opts.Dates,
		logger:     opts.Logger,
		octetCount: opts.OctetCount,
		now:        time.Now,
	}
}

// Register adds the API routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/pkce", s.handlePKCE)
	mux.HandleFunc("POST /v1/challenge", s.handleChallenge)
	mux.HandleFunc("POST /v1/verify", s.handleVerify)
	mux.HandleFunc("GET /v1/authorize", s.handleAuthorize)
}

func (s *Server) handlePKCE(w http.ResponseWriter, r *http.Request) {
	octets, err := s.octetsParam(r)
	if err != nil {
		s.collector.ObserveError(err)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	verifier, err := s.generator.GenerateVerifier(octets)
	s.collector.ObserveGenerate(start, err)
	if err != nil {
		s.fail(w, err)
		return
	}

	challenge, err := pkce.DeriveChallenge(verifier)
	s.collector.ObserveDerive(err)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.logger.Debug("Generated PKCE pair", "octets", octets, "code_challenge", challenge)

	s.writeJSON(w, http.StatusOK, types.PKCEResponse{
		CodeVerifier:        verifier,
		CodeChallenge:       challenge,
		CodeChallengeMethod: pkce.MethodS256,
		CreatedAt:           s.dates.Format(s.now()),
	})
}

func (s *Server) handleChallenge(w http.ResponseWriter, r *http.Request) {
	var req types.ChallengeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.collector.ObserveError(err)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	challenge, err := pkce.DeriveChallenge(req.CodeVerifier)
	s.collector.ObserveDerive(err)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, types.ChallengeResponse{
		CodeChallenge:       challenge,
		CodeChallengeMethod: pkce.MethodS256,
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req types.VerifyRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.collector.ObserveError(err)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	valid := pkce.VerifyChallenge(req.CodeVerifier, req.CodeChallenge)
	s.collector.ObserveVerify(valid)

	s.writeJSON(w, http.StatusOK, types.VerifyResponse{Valid: valid})
}

func (s *Server) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	if s.authClient == nil {
		s.writeError(w, http.StatusNotFound, auth.ErrNotConfigured)
		return
	}

	octets, err := s.octetsParam(r)
	if err != nil {
		s.collector.ObserveError(err)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	session, err := s.authClient.Begin(octets)
	s.collector.ObserveGenerate(start, err)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.collector.ObserveDerive(nil)

	s.writeJSON(w, http.StatusOK, types.AuthorizeResponse{
		AuthorizationURL:    session.AuthURL,
		State:               session.State,
		CodeVerifier:        session.Verifier,
		CodeChallenge:       session.Challenge,
		CodeChallengeMethod: session.Method,
		CreatedAt:           s.dates.Format(session.CreatedAt),
	})
}

// octetsParam reads the optional octets query parameter. Unlike the
// generator, the HTTP surface only hands out RFC 7636 compliant verifiers.
func (s *Server) octetsParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("octets")
	if raw == "" {
		return s.octetCount, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid octets %q", raw)
	}
	if err := pkce.ValidateOctetCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

// fail maps a core error onto an HTTP status.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pkce.ErrRandomGeneration):
		s.logger.Error("Entropy source failed", "error", err)
		s.writeError(w, http.StatusServiceUnavailable, err)
	case errors.Is(err, pkce.ErrNonASCIIVerifier):
		s.writeError(w, http.StatusUnprocessableEntity, err)
	default:
		s.logger.Error("Request failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, types.ErrorResponse{Error: err.Error()})
}
