package domain

import "time"

// Provider identifies an upstream generative-AI vendor.
type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
	ProviderGoogle     Provider = "google"
	ProviderXAI        Provider = "xai"
	ProviderSeedream   Provider = "seedream"
	ProviderHiggsfield Provider = "higgsfield"
	ProviderSuno       Provider = "suno"
)

// Modality is the kind of output a model produces.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
	ModalityVideo Modality = "video"
	ModalityMusic Modality = "music"
)

const (
	// DefaultTemperature is applied when the caller omits a temperature.
	DefaultTemperature = 0.7

	// DefaultMaxTokens is applied when the caller omits a token cap.
	DefaultMaxTokens = 1000
)

// ModelDescriptor describes how a logical model id maps onto a provider.
// Descriptors are immutable once the registry is built.
type ModelDescriptor struct {
	ID                string   `json:"id"`
	DisplayName       string   `json:"name"`
	Provider          Provider `json:"provider"`
	Endpoint          string   `json:"-"`
	WireModelName     string   `json:"-"`
	Modality          Modality `json:"output_type"`
	SupportsStreaming bool     `json:"supports_streaming"`
}

// RunRequest is a single model execution request.
type RunRequest struct {
	ModelID            string
	PromptText         string
	SystemPrompt       string
	Temperature        float64
	MaxTokens          int
	CallerAPIKey       string
	UsePlatformCredits bool
}

// RunResult is the normalized outcome of a run. Exactly one field is set.
type RunResult struct {
	Success *SuccessOutcome
	Pending *PendingOutcome
	Failure *FailureOutcome
}

// SuccessOutcome carries synchronous output. Text and ImageURL are never both set.
type SuccessOutcome struct {
	Text     string
	ImageURL string
}

// PendingOutcome carries an asynchronous job handle.
type PendingOutcome struct {
	JobID string

	// Origin and InitialStatus are filled in by adapters and consumed by the
	// dispatcher when it registers the job.
	Origin        string
	InitialStatus JobStatus
}

// FailureOutcome carries a human-readable upstream or transport error.
type FailureOutcome struct {
	Message string
}

// NewTextResult returns a successful text result.
func NewTextResult(text string) *RunResult {
	return &RunResult{Success: &SuccessOutcome{Text: text}}
}

// NewImageResult returns a successful image result.
func NewImageResult(url string) *RunResult {
	return &RunResult{Success: &SuccessOutcome{ImageURL: url}}
}

// NewPendingResult returns a result that still needs a job id.
func NewPendingResult(origin string, status JobStatus) *RunResult {
	return &RunResult{Pending: &PendingOutcome{Origin: origin, InitialStatus: status}}
}

// NewFailureResult returns a failed result.
func NewFailureResult(message string) *RunResult {
	return &RunResult{Failure: &FailureOutcome{Message: message}}
}

// Outcome names the populated variant, for logging.
func (r *RunResult) Outcome() string {
	switch {
	case r == nil:
		return "none"
	case r.Success != nil:
		return "success"
	case r.Pending != nil:
		return "pending"
	case r.Failure != nil:
		return "failure"
	default:
		return "none"
	}
}

// JobStatus is the lifecycle state of an asynchronous job.
type JobStatus string

const (
	JobStatusSubmitted  JobStatus = "submitted"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// IsTerminal reports whether no further transitions are allowed.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Job is a tracked asynchronous generation.
type Job struct {
	ID        string     `json:"id"`
	Status    JobStatus  `json:"status"`
	Origin    string     `json:"origin"`
	Provider  Provider   `json:"provider"`
	ModelID   string     `json:"model_id"`
	Result    *JobResult `json:"result,omitempty"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// JobResult is the output of a completed job.
type JobResult struct {
	URL  string `json:"url,omitempty"`
	Text string `json:"text,omitempty"`
}

// JobSpec describes a job to register.
type JobSpec struct {
	Origin   string
	Status   JobStatus
	Provider Provider
	ModelID  string
}

// Prompt is a catalog entry.
type Prompt struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	PromptText  string        `json:"prompt_text"`
	Model       string        `json:"model"`
	OutputType  string        `json:"output_type"`
	Tags        []string      `json:"tags"`
	SourceURL   string        `json:"source_url,omitempty"`
	Attribution string        `json:"attribution,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	Author      string        `json:"author"`
	CreatedAt   time.Time     `json:"created_at,omitzero"`
	Metrics     PromptMetrics `json:"metrics"`
}

// PromptMetrics are engagement counters summed across metric sources.
type PromptMetrics struct {
	Views    int64 `json:"views"    db:"views"`
	Likes    int64 `json:"likes"    db:"likes"`
	Shares   int64 `json:"shares"   db:"shares"`
	Comments int64 `json:"comments" db:"comments"`
}

// PromptFilter narrows a catalog listing. Empty fields match everything.
type PromptFilter struct {
	Model      string
	OutputType string
	Limit      int
}
