// Package wire runs provider codecs over HTTP. A codec knows one vendor's
// request and response shapes; the adapter owns the shared client, the
// single outbound call and the non-2xx handling common to every vendor.
package wire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/observability"
)

// maxResponseBytes bounds how much of an upstream body is read.
const maxResponseBytes = 10 << 20

// Codec translates between a run and one vendor's wire format.
type Codec interface {
	// BuildRequest returns the outbound request for a run.
	BuildRequest(ctx context.Context, req *domain.RunRequest, model *domain.ModelDescriptor, apiKey string) (*http.Request, error)

	// ParseSuccess extracts the result from a 2xx body.
	ParseSuccess(provider domain.Provider, body []byte) *domain.RunResult
}

// Config contains outbound HTTP settings.
type Config struct {
	Timeout time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"30s"`
}

// NewHTTPClient returns the client shared by every wire adapter.
func NewHTTPClient(cfg *Config) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &http.Client{
		Timeout: timeout,
	}
}

// Adapter implements domain.Adapter on top of a Codec.
type Adapter struct {
	codec      Codec
	httpClient *http.Client
}

// NewAdapter creates a wire adapter.
func NewAdapter(codec Codec, httpClient *http.Client) *Adapter {
	return &Adapter{
		codec:      codec,
		httpClient: httpClient,
	}
}

// Execute performs exactly one outbound call. Upstream rejections become
// Failure results carrying the raw body; only transport errors are returned.
func (a *Adapter) Execute(
	ctx context.Context,
	req *domain.RunRequest,
	model *domain.ModelDescriptor,
	apiKey string,
) (*domain.RunResult, error) {
	if req == nil || model == nil {
		return nil, errors.New("request and model cannot be nil")
	}

	logger := observability.FromContext(ctx)

	httpReq, err := a.codec.BuildRequest(ctx, req, model, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", model.Provider, err)
	}

	started := time.Now()

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", model.Provider, redactURLError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", model.Provider, err)
	}

	logger.Debug("upstream call finished",
		observability.Int("status", resp.StatusCode),
		observability.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ProviderFailure(model.Provider, resp.StatusCode, body), nil
	}

	return a.codec.ParseSuccess(model.Provider, body), nil
}

// redactURLError drops the query string from a transport error. Some vendors
// take the API key as a query parameter and *url.Error prints the full URL.
func redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	endpoint, _, _ := strings.Cut(urlErr.URL, "?")

	return &url.Error{Op: urlErr.Op, URL: endpoint, Err: urlErr.Err}
}
