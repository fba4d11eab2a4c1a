// Package anthropic implements the Anthropic messages wire format.
package anthropic

import (
	"context"
	"net/http"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/provider/wire"
)

const (
	apiVersion  = "2023-06-01"
	contentPath = "content.0.text"
)

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
	System      string    `json:"system,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Codec speaks the messages protocol. The system prompt is a top-level
// field rather than a message.
type Codec struct{}

// NewCodec creates an Anthropic codec.
func NewCodec() *Codec {
	return &Codec{}
}

// BuildRequest implements wire.Codec.
func (c *Codec) BuildRequest(
	ctx context.Context,
	req *domain.RunRequest,
	model *domain.ModelDescriptor,
	apiKey string,
) (*http.Request, error) {
	httpReq, err := wire.NewJSONRequest(ctx, model.Endpoint, messagesRequest{
		Model:       model.WireModelName,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Messages:    []message{{Role: "user", Content: req.PromptText}},
		System:      req.SystemPrompt,
	})
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("x-api-key", apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	return httpReq, nil
}

// ParseSuccess implements wire.Codec.
func (c *Codec) ParseSuccess(provider domain.Provider, body []byte) *domain.RunResult {
	return wire.TextAt(contentPath)(provider, body)
}
