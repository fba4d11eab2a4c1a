package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/davidbz/pronto/internal/domain"
)

// Registry implements the ModelRegistry interface. It is built once at
// startup and never mutated afterwards, so reads need no locking.
type Registry struct {
	models map[string]*domain.ModelDescriptor
	sorted []*domain.ModelDescriptor
}

// NewRegistry creates a registry from a descriptor table.
func NewRegistry(descriptors []domain.ModelDescriptor) (*Registry, error) {
	r := &Registry{
		models: make(map[string]*domain.ModelDescriptor, len(descriptors)),
		sorted: make([]*domain.ModelDescriptor, 0, len(descriptors)),
	}

	for i := range descriptors {
		desc := descriptors[i]

		if desc.ID == "" {
			return nil, errors.New("model id cannot be empty")
		}

		if desc.Provider == "" {
			return nil, fmt.Errorf("model %s has no provider", desc.ID)
		}

		if _, exists := r.models[desc.ID]; exists {
			return nil, fmt.Errorf("model %s already registered", desc.ID)
		}

		r.models[desc.ID] = &desc
		r.sorted = append(r.sorted, &desc)
	}

	sort.Slice(r.sorted, func(i, j int) bool {
		return r.sorted[i].ID < r.sorted[j].ID
	})

	return r, nil
}

// Lookup returns the descriptor for a model id.
func (r *Registry) Lookup(_ context.Context, modelID string) (*domain.ModelDescriptor, error) {
	desc, exists := r.models[modelID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidModel, modelID)
	}

	return desc, nil
}

// List returns all descriptors ordered by id.
func (r *Registry) List(_ context.Context) []*domain.ModelDescriptor {
	out := make([]*domain.ModelDescriptor, len(r.sorted))
	copy(out, r.sorted)
	return out
}
