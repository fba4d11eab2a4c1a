package domain

import "context"

// Adapter executes a run against one (provider, modality) pair.
type Adapter interface {
	// Execute performs at most one outbound call. Upstream errors are returned
	// as a Failure result; the error return is reserved for transport failures.
	Execute(ctx context.Context, req *RunRequest, model *ModelDescriptor, apiKey string) (*RunResult, error)
}

// ModelRegistry resolves logical model ids.
type ModelRegistry interface {
	// Lookup returns the descriptor for a model id or ErrInvalidModel.
	Lookup(ctx context.Context, modelID string) (*ModelDescriptor, error)

	// List returns every registered descriptor.
	List(ctx context.Context) []*ModelDescriptor
}

// CredentialResolver selects the API key for a request.
type CredentialResolver interface {
	Resolve(ctx context.Context, provider Provider, callerAPIKey string, usePlatformCredits bool) (*Credential, error)
}

// Credential is a resolved API key tagged with its trust domain.
type Credential struct {
	Key    string
	Source CredentialSource
}

// CredentialSource names the trust domain a key came from.
type CredentialSource string

const (
	CredentialSourceCaller   CredentialSource = "caller"
	CredentialSourcePlatform CredentialSource = "platform"
)

// AdapterRouter determines which adapter handles a descriptor.
type AdapterRouter interface {
	// Route returns the adapter registered for the descriptor's provider and modality.
	Route(ctx context.Context, model *ModelDescriptor) (Adapter, error)
}

// JobTracker owns asynchronous job records.
type JobTracker interface {
	Register(ctx context.Context, spec JobSpec) (*Job, error)
	Get(ctx context.Context, jobID string) (*Job, error)
	Complete(ctx context.Context, jobID string, result JobResult) (*Job, error)
	Fail(ctx context.Context, jobID string, message string) (*Job, error)
}

// PromptRepository is the catalog record store.
type PromptRepository interface {
	ListPrompts(ctx context.Context, filter PromptFilter) ([]*Prompt, error)
	GetPrompt(ctx context.Context, promptID string) (*Prompt, error)
	ListModels(ctx context.Context) ([]string, error)
	SumMetrics(ctx context.Context, promptID string) (*PromptMetrics, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
