package openai

import (
	"context"
	"net/http"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/provider/wire"
)

const (
	imageURLPath = "data.0.url"
	imageSize    = "1024x1024"
)

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

// ImageCodec speaks the image generations protocol. Temperature, token caps
// and system prompts do not apply to images and are not sent.
type ImageCodec struct{}

// NewImageCodec creates an image codec.
func NewImageCodec() *ImageCodec {
	return &ImageCodec{}
}

// BuildRequest implements wire.Codec.
func (c *ImageCodec) BuildRequest(
	ctx context.Context,
	req *domain.RunRequest,
	model *domain.ModelDescriptor,
	apiKey string,
) (*http.Request, error) {
	httpReq, err := wire.NewJSONRequest(ctx, model.Endpoint, imageRequest{
		Model:  model.WireModelName,
		Prompt: req.PromptText,
		N:      1,
		Size:   imageSize,
	})
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	return httpReq, nil
}

// ParseSuccess implements wire.Codec.
func (c *ImageCodec) ParseSuccess(provider domain.Provider, body []byte) *domain.RunResult {
	return wire.ImageAt(imageURLPath)(provider, body)
}
