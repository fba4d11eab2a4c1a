// Package memory implements the prompt catalog in process memory. It backs
// the catalog when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/davidbz/pronto/internal/domain"
)

// PromptRepository implements domain.PromptRepository.
type PromptRepository struct {
	mu      sync.RWMutex
	prompts map[string]*domain.Prompt
	metrics map[string][]domain.PromptMetrics
}

// NewPromptRepository creates an empty repository.
func NewPromptRepository() *PromptRepository {
	return &PromptRepository{
		prompts: make(map[string]*domain.Prompt),
		metrics: make(map[string][]domain.PromptMetrics),
	}
}

// AddPrompt inserts or replaces a prompt. An empty author becomes "Admin".
func (r *PromptRepository) AddPrompt(prompt domain.Prompt) {
	if prompt.Author == "" {
		prompt.Author = "Admin"
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts[prompt.ID] = &prompt
}

// AddMetrics records one metric sample for a prompt.
func (r *PromptRepository) AddMetrics(promptID string, metrics domain.PromptMetrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[promptID] = append(r.metrics[promptID], metrics)
}

// ListPrompts implements domain.PromptRepository.
func (r *PromptRepository) ListPrompts(_ context.Context, filter domain.PromptFilter) ([]*domain.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Prompt, 0, len(r.prompts))
	for _, p := range r.prompts {
		if filter.Model != "" && p.Model != filter.Model {
			continue
		}
		if filter.OutputType != "" && p.OutputType != filter.OutputType {
			continue
		}
		out = append(out, clonePrompt(p))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

// GetPrompt implements domain.PromptRepository.
func (r *PromptRepository) GetPrompt(_ context.Context, promptID string) (*domain.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.prompts[promptID]
	if !ok {
		return nil, domain.ErrPromptNotFound
	}

	return clonePrompt(p), nil
}

// ListModels implements domain.PromptRepository.
func (r *PromptRepository) ListModels(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	models := make([]string, 0)
	for _, p := range r.prompts {
		if _, ok := seen[p.Model]; ok {
			continue
		}
		seen[p.Model] = struct{}{}
		models = append(models, p.Model)
	}
	sort.Strings(models)

	return models, nil
}

// SumMetrics implements domain.PromptRepository.
func (r *PromptRepository) SumMetrics(_ context.Context, promptID string) (*domain.PromptMetrics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total domain.PromptMetrics
	for _, m := range r.metrics[promptID] {
		total.Views += m.Views
		total.Likes += m.Likes
		total.Shares += m.Shares
		total.Comments += m.Comments
	}

	return &total, nil
}

func clonePrompt(p *domain.Prompt) *domain.Prompt {
	out := *p
	out.Tags = append([]string{}, p.Tags...)
	return &out
}
