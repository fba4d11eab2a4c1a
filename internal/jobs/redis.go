package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/pronto/internal/domain"
)

const maxUpdateAttempts = 3

// RedisStore keeps jobs as JSON strings with a TTL refreshed on every write.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisClient builds a client from job config.
func NewRedisClient(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client, ttl time.Duration, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}
}

// Create implements Store.
func (s *RedisStore) Create(ctx context.Context, job *domain.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	created, err := s.client.SetNX(ctx, s.key(job.ID), data, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to store job: %w", err)
	}

	if !created {
		return fmt.Errorf("job %s already exists", job.ID)
	}

	return nil
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	raw, err := s.client.Get(ctx, s.key(jobID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	return decodeJob(raw)
}

// Update implements Store using optimistic locking on the job key.
func (s *RedisStore) Update(ctx context.Context, jobID string, fn func(job *domain.Job) error) (*domain.Job, error) {
	key := s.key(jobID)

	var updated *domain.Job

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return domain.ErrJobNotFound
			}
			return fmt.Errorf("failed to load job: %w", err)
		}

		job, err := decodeJob(raw)
		if err != nil {
			return err
		}

		if err := fn(job); err != nil {
			return err
		}

		data, err := json.Marshal(job)
		if err != nil {
			return fmt.Errorf("failed to marshal job: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		updated = job
		return nil
	}

	for range maxUpdateAttempts {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	return nil, fmt.Errorf("job %s update contended after %d attempts", jobID, maxUpdateAttempts)
}

func (s *RedisStore) key(jobID string) string {
	return s.prefix + jobID
}

func decodeJob(raw []byte) (*domain.Job, error) {
	var job domain.Job
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("failed to decode job: %w", err)
	}
	return &job, nil
}
