package domain

import (
	"context"
	"errors"
	"fmt"
)

const (
	// DefaultListLimit is used by ListPrompts when no limit is given.
	DefaultListLimit = 20

	// DefaultByModelLimit is used by PromptsByModel when no limit is given.
	DefaultByModelLimit = 10

	// MaxListLimit caps every catalog listing.
	MaxListLimit = 100
)

// CatalogService serves read-only prompt catalog queries.
type CatalogService struct {
	repo PromptRepository
}

// NewCatalogService creates a new catalog service (DI constructor).
func NewCatalogService(repo PromptRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListPrompts returns prompts matching the filter, newest first, with metrics attached.
func (c *CatalogService) ListPrompts(ctx context.Context, filter PromptFilter) ([]*Prompt, error) {
	filter.Limit = clampLimit(filter.Limit, DefaultListLimit)

	prompts, err := c.repo.ListPrompts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}

	if err := c.attachMetrics(ctx, prompts); err != nil {
		return nil, err
	}

	return prompts, nil
}

// PromptsByModel returns the newest prompts for one model.
func (c *CatalogService) PromptsByModel(ctx context.Context, model string, limit int) ([]*Prompt, error) {
	if model == "" {
		return nil, errors.New("model cannot be empty")
	}

	return c.ListPrompts(ctx, PromptFilter{
		Model: model,
		Limit: clampLimit(limit, DefaultByModelLimit),
	})
}

// GetPrompt returns a single prompt or ErrPromptNotFound.
func (c *CatalogService) GetPrompt(ctx context.Context, promptID string) (*Prompt, error) {
	if promptID == "" {
		return nil, ErrPromptNotFound
	}

	prompt, err := c.repo.GetPrompt(ctx, promptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt %s: %w", promptID, err)
	}

	if err := c.attachMetrics(ctx, []*Prompt{prompt}); err != nil {
		return nil, err
	}

	return prompt, nil
}

// ListModels returns the distinct models referenced by the catalog.
func (c *CatalogService) ListModels(ctx context.Context) ([]string, error) {
	models, err := c.repo.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	if models == nil {
		models = []string{}
	}

	return models, nil
}

// Metrics returns summed engagement counters. A prompt without metric rows
// yields all zeros.
func (c *CatalogService) Metrics(ctx context.Context, promptID string) (*PromptMetrics, error) {
	metrics, err := c.repo.SumMetrics(ctx, promptID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum metrics for %s: %w", promptID, err)
	}

	if metrics == nil {
		return &PromptMetrics{}, nil
	}

	return metrics, nil
}

func (c *CatalogService) attachMetrics(ctx context.Context, prompts []*Prompt) error {
	for _, prompt := range prompts {
		metrics, err := c.Metrics(ctx, prompt.ID)
		if err != nil {
			return err
		}
		prompt.Metrics = *metrics
	}
	return nil
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
