package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/observability"
)

type memoryEntry struct {
	job       *domain.Job
	expiresAt time.Time
}

// MemoryStore keeps jobs in a mutex-guarded map. Expired entries are hidden
// on read and removed by Sweep.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-memory store with the given retention.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create implements Store.
func (s *MemoryStore) Create(_ context.Context, job *domain.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[job.ID]; exists {
		return fmt.Errorf("job %s already exists", job.ID)
	}

	s.entries[job.ID] = &memoryEntry{job: cloneJob(job), expiresAt: s.now().Add(s.ttl)}

	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, jobID string) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.live(jobID)
	if !ok {
		return nil, domain.ErrJobNotFound
	}

	return cloneJob(entry.job), nil
}

// Update implements Store.
func (s *MemoryStore) Update(_ context.Context, jobID string, fn func(job *domain.Job) error) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.live(jobID)
	if !ok {
		return nil, domain.ErrJobNotFound
	}

	updated := cloneJob(entry.job)
	if err := fn(updated); err != nil {
		return nil, err
	}

	entry.job = updated
	entry.expiresAt = s.now().Add(s.ttl)

	return cloneJob(updated), nil
}

// Sweep removes expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Run sweeps on every tick until ctx is cancelled.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger := observability.FromContext(ctx)
	logger.Info("job sweeper started", observability.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("job sweeper stopped")
			return nil
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				logger.Debug("evicted expired jobs", observability.Int("count", removed))
			}
		}
	}
}

// live must be called with s.mu held.
func (s *MemoryStore) live(jobID string) (*memoryEntry, bool) {
	entry, ok := s.entries[jobID]
	if !ok || !s.now().Before(entry.expiresAt) {
		return nil, false
	}
	return entry, true
}
