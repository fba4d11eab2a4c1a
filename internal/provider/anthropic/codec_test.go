package anthropic_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/provider/anthropic"
	"github.com/davidbz/pronto/internal/provider/wire"
)

func TestCodec_BuildRequest(t *testing.T) {
	model := &domain.ModelDescriptor{
		ID:            "claude-3",
		Provider:      domain.ProviderAnthropic,
		Endpoint:      "https://api.anthropic.com/v1/messages",
		WireModelName: "claude-3-sonnet-20240229",
	}

	t.Run("should set auth headers and top-level system", func(t *testing.T) {
		req, err := anthropic.NewCodec().BuildRequest(context.Background(), &domain.RunRequest{
			PromptText:   "Say hi",
			SystemPrompt: "Be terse",
			Temperature:  0.5,
			MaxTokens:    200,
		}, model, "sk-ant")
		require.NoError(t, err)

		require.Equal(t, "sk-ant", req.Header.Get("x-api-key"))
		require.Equal(t, "2023-06-01", req.Header.Get("anthropic-version"))
		require.Empty(t, req.Header.Get("Authorization"))

		raw, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"model": "claude-3-sonnet-20240229",
			"max_tokens": 200,
			"temperature": 0.5,
			"messages": [{"role": "user", "content": "Say hi"}],
			"system": "Be terse"
		}`, string(raw))
	})

	t.Run("should omit system when empty", func(t *testing.T) {
		req, err := anthropic.NewCodec().BuildRequest(context.Background(), &domain.RunRequest{
			PromptText: "Say hi",
		}, model, "sk-ant")
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		require.NotContains(t, body, "system")
	})
}

func TestCodec_EndToEnd(t *testing.T) {
	ctx := context.Background()

	t.Run("should extract first content block", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"hello"}]}`))
		}))
		defer server.Close()

		adapter := wire.NewAdapter(anthropic.NewCodec(), server.Client())
		result, err := adapter.Execute(ctx, &domain.RunRequest{PromptText: "x"}, &domain.ModelDescriptor{
			ID: "claude-3", Provider: domain.ProviderAnthropic, Endpoint: server.URL,
		}, "k")
		require.NoError(t, err)
		require.NotNil(t, result.Success)
		require.Equal(t, "hello", result.Success.Text)
	})

	t.Run("should surface upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`overloaded`))
		}))
		defer server.Close()

		adapter := wire.NewAdapter(anthropic.NewCodec(), server.Client())
		result, err := adapter.Execute(ctx, &domain.RunRequest{PromptText: "x"}, &domain.ModelDescriptor{
			ID: "claude-3", Provider: domain.ProviderAnthropic, Endpoint: server.URL,
		}, "k")
		require.NoError(t, err)
		require.Equal(t, "anthropic API error (400): overloaded", result.Failure.Message)
	})
}
