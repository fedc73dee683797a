package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/formloom/formloom/pkg/domain/model"
	"github.com/formloom/formloom/pkg/service/gforms"
	"github.com/formloom/formloom/pkg/usecase"
	"github.com/formloom/formloom/pkg/utils/errutil"
	"github.com/formloom/formloom/pkg/utils/logging"
)

// Error codes surfaced to the client. CONNECT_GOOGLE and GOOGLE_TOKEN_EXPIRED
// tell the frontend to start or repeat the Google authorization flow.
const (
	codeConnectGoogle        = "CONNECT_GOOGLE"
	codeTokenExpired         = "GOOGLE_TOKEN_EXPIRED"
	codePermissionDenied     = "PERMISSION_DENIED"
	codeNavigationUnresolved = "NAVIGATION_UNRESOLVED"
	codeGeneratorUnavailable = "GENERATOR_UNAVAILABLE"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondData(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, apiResponse{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, apiResponse{Success: false, Error: msg})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		respondError(w, http.StatusBadRequest, "Prompt is required.")
		return
	}

	schema, err := s.uc.Generate(r.Context(), req.Prompt)
	if err != nil {
		s.respondFailure(w, r, err, "Failed to generate form.")
		return
	}

	respondData(w, map[string]any{"schema": schema})
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Schema      *model.FormSchema `json:"schema"`
		Instruction string            `json:"instruction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Schema == nil || strings.TrimSpace(req.Instruction) == "" {
		respondError(w, http.StatusBadRequest, "Schema and instruction are required.")
		return
	}

	schema, err := s.uc.Edit(r.Context(), req.Schema, req.Instruction)
	if err != nil {
		s.respondFailure(w, r, err, "Failed to edit form.")
		return
	}

	respondData(w, map[string]any{"schema": schema})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Schema *model.FormSchema `json:"schema"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Schema == nil {
		respondError(w, http.StatusBadRequest, "Schema is required.")
		return
	}

	result, err := s.uc.Preview(r.Context(), req.Schema)
	if err != nil {
		s.respondFailure(w, r, err, "Schema validation failed.")
		return
	}

	respondData(w, result)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Schema *model.FormSchema `json:"schema"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Schema == nil {
		respondError(w, http.StatusBadRequest, "Schema is required.")
		return
	}

	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusForbidden, codeConnectGoogle)
		return
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})

	created, err := s.uc.CreateForm(r.Context(), req.Schema, ts)
	if err != nil {
		s.respondFailure(w, r, err, "Failed to create form.")
		return
	}

	respondData(w, created)
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

// respondFailure maps typed pipeline failures to HTTP responses. Validation
// and audit errors echo the violated constraint verbatim; platform errors
// collapse to stable error codes.
func (s *Server) respondFailure(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := logging.From(r.Context())

	switch {
	case errors.Is(err, model.ErrSchemaValidation), errors.Is(err, model.ErrNavigationAudit):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, gforms.ErrCredentialExpired):
		respondError(w, http.StatusForbidden, codeTokenExpired)
	case errors.Is(err, gforms.ErrPermissionDenied):
		respondError(w, http.StatusForbidden, codePermissionDenied)
	case errors.Is(err, usecase.ErrGeneratorUnavailable):
		respondError(w, http.StatusServiceUnavailable, codeGeneratorUnavailable)
	case usecase.IsNavigationUnresolved(err):
		logger.Error("navigation left unresolved", "error", err.Error())
		respondError(w, http.StatusBadGateway, codeNavigationUnresolved)
	default:
		_ = errutil.Handle(r.Context(), err, fallback)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
