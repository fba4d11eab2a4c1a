package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/observability"
)

// Tracker implements domain.JobTracker over a Store.
type Tracker struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewTracker creates a tracker (DI constructor).
func NewTracker(store Store) *Tracker {
	return &Tracker{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Register creates a job with a fresh id of the form "<origin>_<uuid>".
func (t *Tracker) Register(ctx context.Context, spec domain.JobSpec) (*domain.Job, error) {
	if spec.Origin == "" {
		return nil, errors.New("job origin cannot be empty")
	}

	status := spec.Status
	if status == "" {
		status = domain.JobStatusSubmitted
	}
	if status.IsTerminal() {
		return nil, fmt.Errorf("job cannot start in terminal status %s", status)
	}

	now := t.now().UTC()
	job := &domain.Job{
		ID:        spec.Origin + "_" + t.newID(),
		Status:    status,
		Origin:    spec.Origin,
		Provider:  spec.Provider,
		ModelID:   spec.ModelID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := t.store.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	observability.FromContext(ctx).Info("job registered",
		observability.String("job_id", job.ID),
		observability.String("status", string(job.Status)),
	)

	return job, nil
}

// Get returns the current job state.
func (t *Tracker) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, domain.ErrJobNotFound
	}

	job, err := t.store.Get(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}

	return job, nil
}

// Complete moves a job to completed with its output.
func (t *Tracker) Complete(ctx context.Context, jobID string, result domain.JobResult) (*domain.Job, error) {
	return t.finish(ctx, jobID, func(job *domain.Job) {
		job.Status = domain.JobStatusCompleted
		job.Result = &result
	})
}

// Fail moves a job to failed with a message.
func (t *Tracker) Fail(ctx context.Context, jobID string, message string) (*domain.Job, error) {
	if message == "" {
		message = "generation failed"
	}

	return t.finish(ctx, jobID, func(job *domain.Job) {
		job.Status = domain.JobStatusFailed
		job.Error = message
	})
}

func (t *Tracker) finish(ctx context.Context, jobID string, apply func(job *domain.Job)) (*domain.Job, error) {
	job, err := t.store.Update(ctx, jobID, func(job *domain.Job) error {
		if job.Status.IsTerminal() {
			return domain.ErrJobFinalized
		}
		apply(job)
		job.UpdatedAt = t.now().UTC()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update job %s: %w", jobID, err)
	}

	observability.FromContext(ctx).Info("job finished",
		observability.String("job_id", job.ID),
		observability.String("status", string(job.Status)),
	)

	return job, nil
}
