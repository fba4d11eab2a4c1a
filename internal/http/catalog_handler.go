package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/observability"
)

// HandleListPrompts lists catalog prompts with optional model, output_type
// and limit query parameters.
func (h *Handler) HandleListPrompts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	prompts, err := h.catalog.ListPrompts(ctx, domain.PromptFilter{
		Model:      query.Get("model"),
		OutputType: query.Get("output_type"),
		Limit:      limit,
	})
	if err != nil {
		observability.FromContext(ctx).Error("list prompts failed", observability.Error(err))
		writeError(ctx, w, http.StatusInternalServerError, "failed to list prompts")
		return
	}

	writeJSON(ctx, w, http.StatusOK, prompts)
}

// HandleGetPrompt returns one prompt.
func (h *Handler) HandleGetPrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	prompt, err := h.catalog.GetPrompt(ctx, r.PathValue("promptID"))
	if err != nil {
		if errors.Is(err, domain.ErrPromptNotFound) {
			writeError(ctx, w, http.StatusNotFound, "Prompt not found")
			return
		}
		observability.FromContext(ctx).Error("get prompt failed", observability.Error(err))
		writeError(ctx, w, http.StatusInternalServerError, "failed to load prompt")
		return
	}

	writeJSON(ctx, w, http.StatusOK, prompt)
}

// HandlePromptsByModel lists the newest prompts for a model.
func (h *Handler) HandlePromptsByModel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	prompts, err := h.catalog.PromptsByModel(ctx, r.PathValue("model"), limit)
	if err != nil {
		observability.FromContext(ctx).Error("prompts by model failed", observability.Error(err))
		writeError(ctx, w, http.StatusInternalServerError, "failed to list prompts")
		return
	}

	writeJSON(ctx, w, http.StatusOK, prompts)
}

// HandleListModels returns the distinct models referenced by the catalog as a
// bare JSON array.
func (h *Handler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	models, err := h.catalog.ListModels(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("list models failed", observability.Error(err))
		writeError(ctx, w, http.StatusInternalServerError, "failed to list models")
		return
	}

	writeJSON(ctx, w, http.StatusOK, models)
}

// parseLimit reads the optional limit parameter. Zero means "use default".
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		writeError(r.Context(), w, http.StatusBadRequest, "limit must be a positive integer")
		return 0, false
	}

	return limit, true
}
