// Package google implements the Gemini generateContent wire format.
package google

import (
	"context"
	"net/http"
	"net/url"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/provider/wire"
)

const textPath = "candidates.0.content.parts.0.text"

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// Codec speaks generateContent with the key in the query string. A system
// prompt is sent as its own leading contents entry.
type Codec struct{}

// NewCodec creates a Google codec.
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
	contents := make([]content, 0, 2)
	if req.SystemPrompt != "" {
		contents = append(contents, content{Parts: []part{{Text: req.SystemPrompt}}})
	}
	contents = append(contents, content{Parts: []part{{Text: req.PromptText}}})

	endpoint := model.Endpoint + "?key=" + url.QueryEscape(apiKey)

	return wire.NewJSONRequest(ctx, endpoint, generateRequest{
		Contents: contents,
		GenerationConfig: generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	})
}

// ParseSuccess implements wire.Codec.
func (c *Codec) ParseSuccess(provider domain.Provider, body []byte) *domain.RunResult {
	return wire.TextAt(textPath)(provider, body)
}
