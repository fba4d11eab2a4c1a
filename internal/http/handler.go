package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/observability"
)

const maxRequestBytes = 1 << 20

// Error codes returned with 400 responses from /api/run.
const (
	codeInvalidRequest        = "invalid_request"
	codeInvalidModel          = "invalid_model"
	codeEmptyPrompt           = "empty_prompt"
	codeMissingAPIKey         = "missing_api_key"
	codePlatformCredsMissing  = "platform_credentials_unavailable"
	codeUnsupportedValidation = "unsupported_provider"
)

// RunService executes model runs.
type RunService interface {
	Run(ctx context.Context, req *domain.RunRequest) (*domain.RunResult, error)
}

// KeyValidator checks a caller-supplied key with its provider.
type KeyValidator interface {
	Validate(ctx context.Context, apiKey string) error
}

// PlatformKeyChecker reports which providers have platform credentials.
type PlatformKeyChecker interface {
	HasPlatformKey(provider domain.Provider) bool
}

// HealthChecker probes a backing dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handler handles HTTP requests.
type Handler struct {
	runs          RunService
	jobs          domain.JobTracker
	catalog       *domain.CatalogService
	models        domain.ModelRegistry
	platformKeys  PlatformKeyChecker
	keyValidator  KeyValidator
	health        HealthChecker
	webhookSecret string
}

// HandlerDeps groups handler collaborators for the DI constructor.
type HandlerDeps struct {
	Runs          RunService
	Jobs          domain.JobTracker
	Catalog       *domain.CatalogService
	Models        domain.ModelRegistry
	PlatformKeys  PlatformKeyChecker
	KeyValidator  KeyValidator
	Health        HealthChecker
	WebhookSecret string
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		runs:          deps.Runs,
		jobs:          deps.Jobs,
		catalog:       deps.Catalog,
		models:        deps.Models,
		platformKeys:  deps.PlatformKeys,
		keyValidator:  deps.KeyValidator,
		health:        deps.Health,
		webhookSecret: deps.WebhookSecret,
	}
}

type runRequest struct {
	Model              string   `json:"model"`
	Prompt             string   `json:"prompt"`
	SystemPrompt       string   `json:"system_prompt"`
	Temperature        *float64 `json:"temperature"`
	MaxTokens          *int     `json:"max_tokens"`
	APIKey             string   `json:"api_key"`
	UsePlatformCredits bool     `json:"use_platform_credits"`
}

func (r *runRequest) toDomain() *domain.RunRequest {
	req := &domain.RunRequest{
		ModelID:            r.Model,
		PromptText:         r.Prompt,
		SystemPrompt:       r.SystemPrompt,
		Temperature:        domain.DefaultTemperature,
		MaxTokens:          domain.DefaultMaxTokens,
		CallerAPIKey:       r.APIKey,
		UsePlatformCredits: r.UsePlatformCredits,
	}

	if r.Temperature != nil {
		req.Temperature = *r.Temperature
	}
	if r.MaxTokens != nil {
		req.MaxTokens = *r.MaxTokens
	}

	return req
}

type runResponse struct {
	Success  bool   `json:"success"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	JobID    string `json:"job_id,omitempty"`
	Status   string `json:"status,omitempty"`
	Error    string `json:"error,omitempty"`
	Code     string `json:"code,omitempty"`
}

func toRunResponse(result *domain.RunResult) runResponse {
	switch {
	case result.Success != nil:
		return runResponse{Success: true, Text: result.Success.Text, ImageURL: result.Success.ImageURL}
	case result.Pending != nil:
		return runResponse{Success: true, JobID: result.Pending.JobID, Status: string(result.Pending.InitialStatus)}
	case result.Failure != nil:
		return runResponse{Success: false, Error: result.Failure.Message}
	default:
		return runResponse{Success: false, Error: "empty result"}
	}
}

// HandleRun executes a model run.
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body runRequest
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, runResponse{
			Error: fmt.Sprintf("invalid request body: %v", err),
			Code:  codeInvalidRequest,
		})
		return
	}

	ctx = observability.WithModel(ctx, body.Model)
	logger := observability.FromContext(ctx)
	logger.Info("run request received",
		observability.Bool("use_platform_credits", body.UsePlatformCredits),
		observability.Bool("has_system_prompt", body.SystemPrompt != ""),
	)

	result, err := h.runs.Run(ctx, body.toDomain())
	if err != nil {
		if domain.IsClientError(err) {
			logger.Info("run rejected", observability.Error(err))
			writeJSON(ctx, w, http.StatusBadRequest, runResponse{Error: err.Error(), Code: runErrorCode(err)})
			return
		}

		logger.Error("run failed", observability.Error(err))
		writeJSON(ctx, w, http.StatusInternalServerError, runResponse{Error: err.Error()})
		return
	}

	logger.Info("run finished", observability.String("outcome", result.Outcome()))

	writeJSON(ctx, w, http.StatusOK, toRunResponse(result))
}

func runErrorCode(err error) string {
	var platformErr *domain.PlatformCredentialsUnavailableError
	switch {
	case errors.Is(err, domain.ErrInvalidModel):
		return codeInvalidModel
	case errors.Is(err, domain.ErrEmptyPrompt):
		return codeEmptyPrompt
	case errors.Is(err, domain.ErrMissingAPIKey):
		return codeMissingAPIKey
	case errors.As(err, &platformErr):
		return codePlatformCredsMissing
	default:
		return codeInvalidRequest
	}
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.health != nil {
		if err := h.health.Ping(ctx); err != nil {
			observability.FromContext(ctx).Warn("health check failed", observability.Error(err))
			writeJSON(ctx, w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
			})
			return
		}
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// HandleRoot describes the service.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"message": "Pronto API",
		"status":  "running",
	})
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBytes))
	return decoder.Decode(dst)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, map[string]string{"error": message})
}
