// Package synthetic provides adapters for providers whose generation runs
// out of band. They make no external API calls: each run deterministically
// yields a Pending result that the dispatcher turns into a tracked job, and
// the job is finished later through the job webhook.
package synthetic

import (
	"context"
	"errors"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/observability"
)

const (
	originImage = "img"
	originVideo = "vid"
	originMusic = "mus"
)

// Adapter implements domain.Adapter without network I/O.
type Adapter struct {
	origin string
	status domain.JobStatus
}

// NewImageAdapter creates an adapter for asynchronous image providers.
// Image jobs are accepted straight into processing.
func NewImageAdapter() *Adapter {
	return &Adapter{origin: originImage, status: domain.JobStatusProcessing}
}

// NewVideoAdapter creates an adapter for video providers.
func NewVideoAdapter() *Adapter {
	return &Adapter{origin: originVideo, status: domain.JobStatusSubmitted}
}

// NewMusicAdapter creates an adapter for music providers.
func NewMusicAdapter() *Adapter {
	return &Adapter{origin: originMusic, status: domain.JobStatusSubmitted}
}

// Execute returns a Pending result. The API key is accepted but unused.
func (a *Adapter) Execute(
	ctx context.Context,
	req *domain.RunRequest,
	model *domain.ModelDescriptor,
	_ string,
) (*domain.RunResult, error) {
	if req == nil || model == nil {
		return nil, errors.New("request and model cannot be nil")
	}

	observability.FromContext(ctx).Debug("accepting asynchronous generation",
		observability.String("origin", a.origin),
		observability.String("initial_status", string(a.status)),
	)

	return domain.NewPendingResult(a.origin, a.status), nil
}

// Origin returns the job id prefix this adapter produces.
func (a *Adapter) Origin() string {
	return a.origin
}
