// Package server exposes the font resolver over HTTP for rendering
// workers that cannot shell out to the CLI.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/fontwell/fontwell/pkg/errors"
	"github.com/fontwell/fontwell/pkg/fontset"
)

// Server serves font resolution requests and the fonts directory itself,
// so a worker can resolve a set and then download the referenced assets
// over the same connection.
type Server struct {
	resolver *fontset.Resolver
	fontsDir string
	logger   *log.Logger
}

// New creates a Server around the given resolver. The fontsDir is served
// read-only under /fonts/.
func New(resolver *fontset.Resolver, fontsDir string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{resolver: resolver, fontsDir: fontsDir, logger: logger}
}

// Handler builds the HTTP routing table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/resolve", s.handleResolve)
	r.Handle("/fonts/*", http.StripPrefix("/fonts/", http.FileServer(http.Dir(s.fontsDir))))

	return r
}

// requestID tags every request with a UUID for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		s.logger.Debug("Request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleResolve runs the resolution chain for ?family= and/or ?path=.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	family := r.URL.Query().Get("family")
	path := r.URL.Query().Get("path")

	set, err := s.resolver.Resolve(r.Context(), family, path)
	if err != nil {
		s.logger.Warn("Resolution failed", "family", family, "path", path, "err", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// errorResponse is the JSON shape for failed requests.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, statusFor(code), errorResponse{
		Code:    code,
		Message: errors.UserMessage(err),
	})
}

// statusFor maps structured error codes to HTTP statuses.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidFamily, errors.ErrCodeInvalidPath, errors.ErrCodeInvalidWeight,
		errors.ErrCodeUnsupportedExt:
		return http.StatusBadRequest
	case errors.ErrCodePathNotFound, errors.ErrCodeNoCandidates, errors.ErrCodeFontNotFound:
		return http.StatusNotFound
	case errors.ErrCodeNetwork, errors.ErrCodeTimeout:
		return http.StatusBadGateway
	case errors.ErrCodeDefaultAssetMissing, errors.ErrCodeMissingAsset:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
