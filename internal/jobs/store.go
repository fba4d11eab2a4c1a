// Package jobs tracks asynchronous generations. A job is created once,
// transitions at most once to a terminal state and is evicted after a
// retention period measured from its last write.
package jobs

import (
	"context"
	"time"

	"github.com/davidbz/pronto/internal/domain"
)

// Store persists job records.
type Store interface {
	// Create stores a new job. Ids are unique, so Create never overwrites.
	Create(ctx context.Context, job *domain.Job) error

	// Get returns a copy of a job or domain.ErrJobNotFound.
	Get(ctx context.Context, jobID string) (*domain.Job, error)

	// Update applies fn to the stored job atomically and persists the result.
	// If fn returns an error nothing is written.
	Update(ctx context.Context, jobID string, fn func(job *domain.Job) error) (*domain.Job, error)
}

// Config contains job tracking settings.
type Config struct {
	Backend       string        `env:"JOBS_BACKEND"        envDefault:"memory"`
	TTL           time.Duration `env:"JOBS_TTL"            envDefault:"24h"`
	SweepInterval time.Duration `env:"JOBS_SWEEP_INTERVAL" envDefault:"1m"`
	WebhookSecret string        `env:"JOBS_WEBHOOK_SECRET"`
	RedisAddr     string        `env:"REDIS_ADDR"          envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"            envDefault:"0"`
	RedisPrefix   string        `env:"JOBS_REDIS_PREFIX"   envDefault:"pronto:job:"`
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

func cloneJob(job *domain.Job) *domain.Job {
	out := *job
	if job.Result != nil {
		result := *job.Result
		out.Result = &result
	}
	return &out
}
