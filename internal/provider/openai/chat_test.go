package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/provider/openai"
	"github.com/davidbz/pronto/internal/provider/wire"
)

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestChatCodec_BuildRequest(t *testing.T) {
	codec := openai.NewChatCodec()
	model := &domain.ModelDescriptor{
		ID:            "gpt-4o",
		Provider:      domain.ProviderOpenAI,
		Endpoint:      "https://api.openai.com/v1/chat/completions",
		WireModelName: "gpt-4o",
		Modality:      domain.ModalityText,
	}

	t.Run("should put system message first", func(t *testing.T) {
		req, err := codec.BuildRequest(context.Background(), &domain.RunRequest{
			PromptText:   "Say hi",
			SystemPrompt: "Be terse",
			Temperature:  0.7,
			MaxTokens:    1000,
		}, model, "sk-test")
		require.NoError(t, err)

		require.Equal(t, http.MethodPost, req.Method)
		require.Equal(t, model.Endpoint, req.URL.String())
		require.Equal(t, "Bearer sk-test", req.Header.Get("Authorization"))
		require.Equal(t, "application/json", req.Header.Get("Content-Type"))

		body := decodeBody(t, req)
		require.Equal(t, "gpt-4o", body["model"])
		require.InDelta(t, 0.7, body["temperature"], 0.0001)
		require.InDelta(t, 1000, body["max_tokens"], 0.0001)
		require.Equal(t, false, body["stream"])

		messages := body["messages"].([]any)
		require.Len(t, messages, 2)
		require.Equal(t, map[string]any{"role": "system", "content": "Be terse"}, messages[0])
		require.Equal(t, map[string]any{"role": "user", "content": "Say hi"}, messages[1])
	})

	t.Run("should omit system message when empty", func(t *testing.T) {
		req, err := codec.BuildRequest(context.Background(), &domain.RunRequest{PromptText: "Say hi"}, model, "k")
		require.NoError(t, err)

		messages := decodeBody(t, req)["messages"].([]any)
		require.Len(t, messages, 1)
	})

	t.Run("should pass temperature through unchanged", func(t *testing.T) {
		req, err := codec.BuildRequest(context.Background(), &domain.RunRequest{
			PromptText:  "x",
			Temperature: 0,
			MaxTokens:   5,
		}, model, "k")
		require.NoError(t, err)

		body := decodeBody(t, req)
		require.Contains(t, body, "temperature")
		require.InDelta(t, 0, body["temperature"], 0.0001)
	})
}

func TestChatCodec_EndToEnd(t *testing.T) {
	ctx := context.Background()

	t.Run("should extract first completion text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi"}},` +
				`{"message":{"content":"second"}}]}`))
		}))
		defer server.Close()

		adapter := wire.NewAdapter(openai.NewChatCodec(), server.Client())
		result, err := adapter.Execute(ctx, &domain.RunRequest{PromptText: "Say hi"}, &domain.ModelDescriptor{
			ID: "gpt-4o", Provider: domain.ProviderOpenAI, Endpoint: server.URL, WireModelName: "gpt-4o",
		}, "sk-test")
		require.NoError(t, err)
		require.NotNil(t, result.Success)
		require.Equal(t, "hi", result.Success.Text)
		require.Empty(t, result.Success.ImageURL)
	})

	t.Run("should report xai as the failing provider", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limited"}`))
		}))
		defer server.Close()

		adapter := wire.NewAdapter(openai.NewChatCodec(), server.Client())
		result, err := adapter.Execute(ctx, &domain.RunRequest{PromptText: "x"}, &domain.ModelDescriptor{
			ID: "grok-3", Provider: domain.ProviderXAI, Endpoint: server.URL, WireModelName: "grok-3",
		}, "xai-key")
		require.NoError(t, err)
		require.NotNil(t, result.Failure)
		require.Equal(t, `xai API error (429): {"error":"rate limited"}`, result.Failure.Message)
	})

	t.Run("should fail on empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		adapter := wire.NewAdapter(openai.NewChatCodec(), server.Client())
		result, err := adapter.Execute(ctx, &domain.RunRequest{PromptText: "x"}, &domain.ModelDescriptor{
			ID: "gpt-4o", Provider: domain.ProviderOpenAI, Endpoint: server.URL,
		}, "k")
		require.NoError(t, err)
		require.NotNil(t, result.Failure)
	})
}

func TestImageCodec(t *testing.T) {
	ctx := context.Background()

	t.Run("should send fixed image payload", func(t *testing.T) {
		req, err := openai.NewImageCodec().BuildRequest(ctx, &domain.RunRequest{
			PromptText:   "a cat",
			SystemPrompt: "ignored",
			Temperature:  0.9,
		}, &domain.ModelDescriptor{
			ID: "dall-e-3", Endpoint: "https://api.openai.com/v1/images/generations", WireModelName: "dall-e-3",
		}, "sk-test")
		require.NoError(t, err)
		require.Equal(t, "Bearer sk-test", req.Header.Get("Authorization"))

		body := decodeBody(t, req)
		require.Equal(t, map[string]any{
			"model":  "dall-e-3",
			"prompt": "a cat",
			"n":      float64(1),
			"size":   "1024x1024",
		}, body)
	})

	t.Run("should return image url only", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"data":[{"url":"https://img/1.png"}]}`))
		}))
		defer server.Close()

		adapter := wire.NewAdapter(openai.NewImageCodec(), server.Client())
		result, err := adapter.Execute(ctx, &domain.RunRequest{PromptText: "a cat"}, &domain.ModelDescriptor{
			ID: "dall-e-3", Provider: domain.ProviderOpenAI, Endpoint: server.URL,
		}, "k")
		require.NoError(t, err)
		require.NotNil(t, result.Success)
		require.Equal(t, "https://img/1.png", result.Success.ImageURL)
		require.Empty(t, result.Success.Text)
	})
}
