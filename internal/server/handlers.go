package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/nao1215/passcheck/internal/generator"
)

const (
	// maxBodyBytes caps the /analyze request body size.
	maxBodyBytes = 1 << 20

	// maxGenerateLength caps the length accepted by /generate.
	maxGenerateLength = 1024
)

// analyzeRequest is the JSON body accepted by POST /analyze.
type analyzeRequest struct {
	// Password is the candidate to evaluate. Required.
	Password string `json:"password"`
}

// generateResponse is the JSON body returned by GET /generate.
type generateResponse struct {
	// Password is the freshly generated password. The clear text is the
	// whole point of this endpoint, so it is not masked.
	Password string `json:"password"`
}

// healthResponse is the JSON body returned by GET /healthz.
type healthResponse struct {
	Status string `json:"status"`
}

// errorResponse is the JSON body returned for every client error.
type errorResponse struct {
	Error string `json:"error"`
}

// handleIndex serves the embedded analyzer page.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	page, err := content.ReadFile("templates/index.html")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "analyzer page unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// handleAnalyze evaluates the submitted password and returns the masked
// report. An empty or missing password is a client error.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Password is required")
		return
	}

	report := s.eval.Evaluate(req.Password)

	writeJSON(w, http.StatusOK, report.Masked())
}

// handleGenerate returns a generated password. The optional length query
// parameter follows the generator's contract: non-positive values select
// the default length.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	length := generator.DefaultLength
	if raw := r.URL.Query().Get("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "length must be an integer")
			return
		}
		if n > maxGenerateLength {
			writeError(w, http.StatusBadRequest, "length must be at most 1024")
			return
		}
		length = n
	}

	password, err := generator.Generate(length)
	if err != nil {
		if errors.Is(err, generator.ErrLengthTooShort) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("password generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "password generation failed")
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Password: password})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// writeJSON writes data as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
