package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zkmesh/relay/gateway"
	"github.com/zkmesh/relay/logging"
	"github.com/zkmesh/relay/relayer"
	"github.com/zkmesh/relay/shared"
)

// Version is stamped by the build and reported by the info endpoint.
var Version = "unknown"

// proofRelayer is the part of relayer.Relayer the REST handlers use.
type proofRelayer interface {
	Submit(ctx context.Context, proof []byte, explicitAccount string) (*shared.Submission, error)
	Status(ctx context.Context, jobID string) (*shared.JobStatus, error)
	Submissions(limit int) ([]relayer.SubmissionRecord, error)
}

type submitRequest struct {
	Proof   []byte `json:"proof"`
	Account string `json:"account,omitempty"`
}

type submitResponse struct {
	JobID string `json:"job_id"`
}

type statusResponse struct {
	Status         string `json:"status"`
	RequestID      string `json:"request_id,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
	Error          string `json:"error,omitempty"`
}

type infoResponse struct {
	Version             string   `json:"version"`
	Gateways            []string `json:"gateways"`
	SubmissionThreshold float64  `json:"submission_threshold"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newRouter(ctx context.Context, relayer proofRelayer, cfg Config) http.Handler {
	router := chi.NewRouter()
	router.Use(requestLogger(ctx))

	router.Post("/v1/proofs", func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		submission, err := relayer.Submit(r.Context(), req.Proof, req.Account)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(r.Context(), w, http.StatusCreated, submitResponse{JobID: submission.JobID})
	})

	router.Get("/v1/jobs/{jobID}", func(w http.ResponseWriter, r *http.Request) {
		status, err := relayer.Status(r.Context(), chi.URLParam(r, "jobID"))
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, statusResponse{
			Status:         string(status.State),
			RequestID:      status.RequestID,
			AdditionalInfo: status.AdditionalInfo,
			Error:          status.Error,
		})
	})

	router.Get("/v1/submissions", func(w http.ResponseWriter, r *http.Request) {
		limit := 100
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			limit = parsed
		}
		records, err := relayer.Submissions(limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, records)
	})

	router.Get("/v1/info", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, infoResponse{
			Version:             Version,
			Gateways:            cfg.Gateways,
			SubmissionThreshold: cfg.Relayer.SubmissionThreshold,
		})
	})

	return router
}

// statusFor maps workflow errors onto HTTP status codes. Caller mistakes
// are 4xx, upstream trouble surfaces as 502.
func statusFor(err error) int {
	switch {
	case errors.Is(err, relayer.ErrMissingProof),
		errors.Is(err, relayer.ErrMissingJobID),
		errors.Is(err, shared.ErrMalformedAccount),
		errors.Is(err, gateway.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, gateway.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, relayer.ErrSubmissionRejected),
		errors.Is(err, relayer.ErrStatusLookup),
		errors.Is(err, gateway.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.FromContext(ctx).Warn("failed to write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

// requestLogger tags every request with a fresh request id and puts the
// logger into the request context for the handlers downstream.
func requestLogger(ctx context.Context) func(http.Handler) http.Handler {
	logger := logging.FromContext(ctx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := logger.With(zap.Stringer("request_id", uuid.New()))
			reqLogger.Debug("new request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
			next.ServeHTTP(w, r.WithContext(logging.NewContext(r.Context(), reqLogger)))
		})
	}
}
