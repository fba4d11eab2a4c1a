// Package openai implements the OpenAI wire formats. The chat codec is also
// used for xAI, which speaks the same chat completions protocol.
package openai

import (
	"context"
	"net/http"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/provider/wire"
)

const chatContentPath = "choices.0.message.content"

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCodec speaks the chat completions protocol with Bearer auth.
type ChatCodec struct{}

// NewChatCodec creates a chat codec.
func NewChatCodec() *ChatCodec {
	return &ChatCodec{}
}

// BuildRequest implements wire.Codec.
func (c *ChatCodec) BuildRequest(
	ctx context.Context,
	req *domain.RunRequest,
	model *domain.ModelDescriptor,
	apiKey string,
) (*http.Request, error) {
	messages := make([]chatMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.PromptText})

	httpReq, err := wire.NewJSONRequest(ctx, model.Endpoint, chatRequest{
		Model:       model.WireModelName,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      false,
	})
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	return httpReq, nil
}

// ParseSuccess implements wire.Codec.
func (c *ChatCodec) ParseSuccess(provider domain.Provider, body []byte) *domain.RunResult {
	return wire.TextAt(chatContentPath)(provider, body)
}
