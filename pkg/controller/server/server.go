package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/utils/errutil"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	mux *chi.Mux
}

const defaultMaxExportSize = 256 << 20

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"failed to marshal response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors to HTTP status codes. Unexpected errors are reported.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrInvalidOption):
		code = http.StatusBadRequest
	case errors.Is(err, types.ErrNoTargets):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, types.ErrNotConfigured):
		code = http.StatusServiceUnavailable
	default:
		errutil.HandleError(r.Context(), msg, err)
	}

	writeJSON(w, code, errorResponse{Error: err.Error()})
}

type config struct {
	maxExportSize     int64
	assessmentTimeout time.Duration
}

type Option func(*config)

// WithMaxExportSize limits the request body of an uploaded export
func WithMaxExportSize(size int64) Option {
	return func(cfg *config) {
		cfg.maxExportSize = size
	}
}

// WithAssessmentTimeout bounds a background assessment batch. Zero means no limit.
func WithAssessmentTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.assessmentTimeout = d
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		maxExportSize: defaultMaxExportSize,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/organizations", handleListOrganizations(uc))
		r.Get("/organizations/{orgID}/targets", handleGetTargets(uc))
		r.Post("/assessments", handleRunAssessments(uc, cfg.assessmentTimeout))
		r.Post("/exports", handleProcessExport(uc, cfg.maxExportSize))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
