package http

import (
	"errors"
	"net/http"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/observability"
	"github.com/davidbz/pronto/internal/provider/openai"
)

type playgroundModel struct {
	*domain.ModelDescriptor
	PlatformCredits bool `json:"platform_credits_available"`
}

// HandlePlaygroundModels lists runnable models and whether platform credits
// can be used for each.
func (h *Handler) HandlePlaygroundModels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	descriptors := h.models.List(ctx)
	out := make([]playgroundModel, 0, len(descriptors))
	for _, desc := range descriptors {
		out = append(out, playgroundModel{
			ModelDescriptor: desc,
			PlatformCredits: h.platformKeys != nil && h.platformKeys.HasPlatformKey(desc.Provider),
		})
	}

	writeJSON(ctx, w, http.StatusOK, map[string][]playgroundModel{"models": out})
}

type validateKeyRequest struct {
	Provider domain.Provider `json:"provider"`
	APIKey   string          `json:"api_key"`
}

type validateKeyResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

// HandleValidateKey checks a BYOK key before the caller stores it.
func (h *Handler) HandleValidateKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body validateKeyRequest
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, validateKeyResponse{
			Error: "invalid request body",
			Code:  codeInvalidRequest,
		})
		return
	}

	if body.Provider == "" {
		body.Provider = domain.ProviderOpenAI
	}

	if body.Provider != domain.ProviderOpenAI || h.keyValidator == nil {
		writeJSON(ctx, w, http.StatusBadRequest, validateKeyResponse{
			Error: "key validation is not supported for provider " + string(body.Provider),
			Code:  codeUnsupportedValidation,
		})
		return
	}

	err := h.keyValidator.Validate(ctx, body.APIKey)
	switch {
	case err == nil:
		writeJSON(ctx, w, http.StatusOK, validateKeyResponse{Valid: true})
	case errors.Is(err, openai.ErrInvalidKey):
		writeJSON(ctx, w, http.StatusOK, validateKeyResponse{Valid: false, Error: err.Error()})
	default:
		observability.FromContext(ctx).Warn("key validation unavailable", observability.Error(err))
		writeJSON(ctx, w, http.StatusBadGateway, validateKeyResponse{Valid: false, Error: err.Error()})
	}
}
