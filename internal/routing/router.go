package routing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davidbz/pronto/internal/domain"
)

type routeKey struct {
	provider domain.Provider
	modality domain.Modality
}

// AdapterRouter maps (provider, modality) pairs to adapters.
type AdapterRouter struct {
	mu       sync.RWMutex
	adapters map[routeKey]domain.Adapter
}

// NewRouter creates an empty router.
func NewRouter() *AdapterRouter {
	return &AdapterRouter{
		mu:       sync.RWMutex{},
		adapters: make(map[routeKey]domain.Adapter),
	}
}

// Register binds an adapter to a provider and modality.
func (r *AdapterRouter) Register(provider domain.Provider, modality domain.Modality, adapter domain.Adapter) error {
	if adapter == nil {
		return errors.New("adapter cannot be nil")
	}

	if provider == "" || modality == "" {
		return errors.New("provider and modality are required")
	}

	key := routeKey{provider: provider, modality: modality}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[key]; exists {
		return fmt.Errorf("adapter for %s/%s already registered", provider, modality)
	}

	r.adapters[key] = adapter

	return nil
}

// Route selects the adapter for a model descriptor.
func (r *AdapterRouter) Route(_ context.Context, model *domain.ModelDescriptor) (domain.Adapter, error) {
	if model == nil {
		return nil, errors.New("model descriptor cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, exists := r.adapters[routeKey{provider: model.Provider, modality: model.Modality}]
	if !exists {
		return nil, fmt.Errorf("no adapter for %s/%s", model.Provider, model.Modality)
	}

	return adapter, nil
}
