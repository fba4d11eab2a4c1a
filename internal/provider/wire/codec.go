package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/davidbz/pronto/internal/domain"
)

// NewJSONRequest marshals payload into a POST request.
func NewJSONRequest(ctx context.Context, url string, payload any) (*http.Request, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}

// ProviderFailure formats a non-2xx response. The body is kept verbatim.
func ProviderFailure(provider domain.Provider, status int, body []byte) *domain.RunResult {
	return domain.NewFailureResult(fmt.Sprintf("%s API error (%d): %s", provider, status, string(body)))
}

// ExtractString reads a string at a gjson path. Missing paths, non-string
// values and invalid JSON all yield a Failure.
func ExtractString(provider domain.Provider, body []byte, path string) (string, *domain.RunResult) {
	if !gjson.ValidBytes(body) {
		return "", domain.NewFailureResult(fmt.Sprintf("%s returned malformed response: invalid JSON", provider))
	}

	value := gjson.GetBytes(body, path)
	if !value.Exists() || value.Type != gjson.String {
		return "", domain.NewFailureResult(fmt.Sprintf("%s returned malformed response: missing %s", provider, path))
	}

	return value.String(), nil
}

// TextAt returns a codec parse function that reads text at path.
func TextAt(path string) func(domain.Provider, []byte) *domain.RunResult {
	return func(provider domain.Provider, body []byte) *domain.RunResult {
		text, failure := ExtractString(provider, body, path)
		if failure != nil {
			return failure
		}
		return domain.NewTextResult(text)
	}
}

// ImageAt returns a codec parse function that reads an image URL at path.
func ImageAt(path string) func(domain.Provider, []byte) *domain.RunResult {
	return func(provider domain.Provider, body []byte) *domain.RunResult {
		url, failure := ExtractString(provider, body, path)
		if failure != nil {
			return failure
		}
		return domain.NewImageResult(url)
	}
}
