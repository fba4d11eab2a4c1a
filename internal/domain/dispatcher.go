package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davidbz/pronto/internal/observability"
)

// EventRunDispatched is published once per dispatched run.
const EventRunDispatched = "run.dispatched"

// Dispatcher orchestrates a run across registry, credentials, adapters and jobs.
// It holds no per-request state.
type Dispatcher struct {
	registry  ModelRegistry
	resolver  CredentialResolver
	router    AdapterRouter
	jobs      JobTracker
	publisher EventPublisher
}

// NewDispatcher creates a new dispatcher (DI constructor).
func NewDispatcher(
	registry ModelRegistry,
	resolver CredentialResolver,
	router AdapterRouter,
	jobs JobTracker,
	publisher EventPublisher,
) *Dispatcher {
	return &Dispatcher{
		registry:  registry,
		resolver:  resolver,
		router:    router,
		jobs:      jobs,
		publisher: publisher,
	}
}

// Run executes a single request. The error return is reserved for caller
// mistakes (unknown model, empty prompt, credential errors); everything that
// goes wrong after a credential is chosen comes back as a Failure result.
func (d *Dispatcher) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if strings.TrimSpace(req.PromptText) == "" {
		return nil, ErrEmptyPrompt
	}

	model, err := d.registry.Lookup(ctx, req.ModelID)
	if err != nil {
		return nil, fmt.Errorf("model lookup failed: %w", err)
	}

	ctx = observability.WithProvider(ctx, string(model.Provider))
	ctx = observability.WithModel(ctx, model.ID)
	logger := observability.FromContext(ctx)

	credential, err := d.resolver.Resolve(ctx, model.Provider, req.CallerAPIKey, req.UsePlatformCredits)
	if err != nil {
		logger.Info("credential resolution rejected", observability.Error(err))
		return nil, fmt.Errorf("credential resolution failed: %w", err)
	}

	result := d.execute(ctx, req, model, credential)

	d.publish(ctx, model, credential, result)

	return result, nil
}

func (d *Dispatcher) execute(
	ctx context.Context,
	req *RunRequest,
	model *ModelDescriptor,
	credential *Credential,
) *RunResult {
	logger := observability.FromContext(ctx)

	adapter, err := d.router.Route(ctx, model)
	if err != nil {
		logger.Error("no adapter for model", observability.Error(err))
		return NewFailureResult(fmt.Sprintf("no adapter available for model %s", model.ID))
	}

	result, err := adapter.Execute(ctx, req, model, credential.Key)
	if err != nil {
		logger.Warn("adapter transport failure", observability.Error(err))
		return NewFailureResult(err.Error())
	}

	if result == nil || result.Outcome() == "none" {
		return NewFailureResult(fmt.Sprintf("%s adapter returned no result", model.Provider))
	}

	if result.Pending != nil {
		return d.registerJob(ctx, model, result.Pending)
	}

	return result
}

func (d *Dispatcher) registerJob(ctx context.Context, model *ModelDescriptor, pending *PendingOutcome) *RunResult {
	status := pending.InitialStatus
	if status == "" {
		status = JobStatusSubmitted
	}

	job, err := d.jobs.Register(ctx, JobSpec{
		Origin:   pending.Origin,
		Status:   status,
		Provider: model.Provider,
		ModelID:  model.ID,
	})
	if err != nil {
		observability.FromContext(ctx).Error("job registration failed", observability.Error(err))
		return NewFailureResult(fmt.Sprintf("failed to register job: %v", err))
	}

	return &RunResult{Pending: &PendingOutcome{
		JobID:         job.ID,
		Origin:        job.Origin,
		InitialStatus: job.Status,
	}}
}

func (d *Dispatcher) publish(ctx context.Context, model *ModelDescriptor, credential *Credential, result *RunResult) {
	if d.publisher == nil {
		return
	}

	data := map[string]interface{}{
		"model":             model.ID,
		"provider":          string(model.Provider),
		"modality":          string(model.Modality),
		"credential_source": string(credential.Source),
		"outcome":           result.Outcome(),
	}
	if result.Pending != nil {
		data["job_id"] = result.Pending.JobID
	}

	d.publisher.Publish(ctx, EventRunDispatched, data)
}
