package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/observability"
)

const webhookSecretHeader = "X-Webhook-Secret"

type jobResponse struct {
	JobID     string            `json:"job_id"`
	Status    domain.JobStatus  `json:"status"`
	ModelID   string            `json:"model,omitempty"`
	Result    *domain.JobResult `json:"result,omitempty"`
	Error     string            `json:"error,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func toJobResponse(job *domain.Job) jobResponse {
	return jobResponse{
		JobID:     job.ID,
		Status:    job.Status,
		ModelID:   job.ModelID,
		Result:    job.Result,
		Error:     job.Error,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}

// HandleJobStatus reports the state of an asynchronous job.
func (h *Handler) HandleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobID")
	ctx := observability.WithJobID(r.Context(), jobID)

	job, err := h.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			writeError(ctx, w, http.StatusNotFound, "Job not found")
			return
		}
		observability.FromContext(ctx).Error("job lookup failed", observability.Error(err))
		writeError(ctx, w, http.StatusInternalServerError, "failed to load job")
		return
	}

	writeJSON(ctx, w, http.StatusOK, toJobResponse(job))
}

type jobWebhookRequest struct {
	Status domain.JobStatus `json:"status"`
	URL    string           `json:"url"`
	Text   string           `json:"text"`
	Error  string           `json:"error"`
}

// HandleJobWebhook lets an upstream provider finish a job. It is disabled
// unless a webhook secret is configured.
func (h *Handler) HandleJobWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.webhookSecret == "" {
		writeError(ctx, w, http.StatusNotFound, "not found")
		return
	}

	provided := r.Header.Get(webhookSecretHeader)
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.webhookSecret)) != 1 {
		writeError(ctx, w, http.StatusUnauthorized, "invalid webhook secret")
		return
	}

	var body jobWebhookRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	jobID := r.PathValue("jobID")
	ctx = observability.WithJobID(ctx, jobID)

	var (
		job *domain.Job
		err error
	)
	switch body.Status {
	case domain.JobStatusCompleted:
		if body.URL == "" && body.Text == "" {
			writeError(ctx, w, http.StatusBadRequest, "completed jobs require url or text")
			return
		}
		job, err = h.jobs.Complete(ctx, jobID, domain.JobResult{URL: body.URL, Text: body.Text})
	case domain.JobStatusFailed:
		job, err = h.jobs.Fail(ctx, jobID, body.Error)
	default:
		writeError(ctx, w, http.StatusBadRequest, "status must be completed or failed")
		return
	}

	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		writeError(ctx, w, http.StatusNotFound, "Job not found")
	case errors.Is(err, domain.ErrJobFinalized):
		writeError(ctx, w, http.StatusConflict, "job already finalized")
	case err != nil:
		observability.FromContext(ctx).Error("job webhook failed", observability.Error(err))
		writeError(ctx, w, http.StatusInternalServerError, "failed to update job")
	default:
		observability.FromContext(ctx).Info("job finished by webhook", observability.String("status", string(job.Status)))
		writeJSON(ctx, w, http.StatusOK, toJobResponse(job))
	}
}
