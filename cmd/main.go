package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/davidbz/pronto/internal/config"
	"github.com/davidbz/pronto/internal/credentials"
	"github.com/davidbz/pronto/internal/domain"
	apihttp "github.com/davidbz/pronto/internal/http"
	"github.com/davidbz/pronto/internal/http/middleware"
	"github.com/davidbz/pronto/internal/jobs"
	"github.com/davidbz/pronto/internal/observability"
	"github.com/davidbz/pronto/internal/provider/anthropic"
	"github.com/davidbz/pronto/internal/provider/google"
	"github.com/davidbz/pronto/internal/provider/openai"
	"github.com/davidbz/pronto/internal/provider/registry"
	"github.com/davidbz/pronto/internal/provider/synthetic"
	"github.com/davidbz/pronto/internal/provider/wire"
	"github.com/davidbz/pronto/internal/routing"
	"github.com/davidbz/pronto/internal/storage/memory"
	"github.com/davidbz/pronto/internal/storage/postgres"
)

const shutdownTimeout = 15 * time.Second

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *apihttp.Server, store jobs.Store, jobsCfg *jobs.Config) error {
		return run(server, store, jobsCfg)
	})
	if err != nil {
		log.Fatalf("Application stopped: %v", err)
	}
}

func run(server *apihttp.Server, store jobs.Store, jobsCfg *jobs.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(server.Start)

	group.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if memStore, ok := store.(*jobs.MemoryStore); ok {
		group.Go(func() error {
			return memStore.Run(ctx, jobsCfg.SweepInterval)
		})
	}

	return group.Wait()
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Model Registry
	if err := container.Provide(func(cfg *registry.Config) (domain.ModelRegistry, error) {
		return registry.NewRegistry(registry.DefaultModels(*cfg))
	}); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// Credentials
	if err := container.Provide(credentials.NewResolver); err != nil {
		log.Fatalf("Failed to provide credential resolver: %v", err)
	}
	if err := container.Provide(func(resolver *credentials.Resolver) domain.CredentialResolver {
		return resolver
	}); err != nil {
		log.Fatalf("Failed to provide credential resolver interface: %v", err)
	}

	// Provider Adapters
	if err := container.Provide(wire.NewHTTPClient); err != nil {
		log.Fatalf("Failed to provide HTTP client: %v", err)
	}
	if err := container.Provide(buildRouter); err != nil {
		log.Fatalf("Failed to provide adapter router: %v", err)
	}

	// Jobs
	if err := container.Provide(newJobStore); err != nil {
		log.Fatalf("Failed to provide job store: %v", err)
	}
	if err := container.Provide(func(store jobs.Store) domain.JobTracker {
		return jobs.NewTracker(store)
	}); err != nil {
		log.Fatalf("Failed to provide job tracker: %v", err)
	}

	// Catalog
	if err := container.Provide(newPromptRepository); err != nil {
		log.Fatalf("Failed to provide prompt repository: %v", err)
	}
	if err := container.Provide(domain.NewCatalogService); err != nil {
		log.Fatalf("Failed to provide catalog service: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewDispatcher); err != nil {
		log.Fatalf("Failed to provide dispatcher: %v", err)
	}
	if err := container.Provide(openai.NewKeyValidator); err != nil {
		log.Fatalf("Failed to provide key validator: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(
		dispatcher *domain.Dispatcher,
		tracker domain.JobTracker,
		catalog *domain.CatalogService,
		repo domain.PromptRepository,
		models domain.ModelRegistry,
		resolver *credentials.Resolver,
		validator *openai.KeyValidator,
		jobsCfg *jobs.Config,
	) *apihttp.Handler {
		health, _ := repo.(apihttp.HealthChecker)

		return apihttp.NewHandler(apihttp.HandlerDeps{
			Runs:          dispatcher,
			Jobs:          tracker,
			Catalog:       catalog,
			Models:        models,
			PlatformKeys:  resolver,
			KeyValidator:  validator,
			Health:        health,
			WebhookSecret: jobsCfg.WebhookSecret,
		})
	}); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(apihttp.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// buildRouter binds every provider and modality the registry knows about.
func buildRouter(client *http.Client) (domain.AdapterRouter, error) {
	router := routing.NewRouter()

	chat := wire.NewAdapter(openai.NewChatCodec(), client)
	images := synthetic.NewImageAdapter()

	routes := []struct {
		provider domain.Provider
		modality domain.Modality
		adapter  domain.Adapter
	}{
		{domain.ProviderOpenAI, domain.ModalityText, chat},
		{domain.ProviderXAI, domain.ModalityText, chat},
		{domain.ProviderOpenAI, domain.ModalityImage, wire.NewAdapter(openai.NewImageCodec(), client)},
		{domain.ProviderAnthropic, domain.ModalityText, wire.NewAdapter(anthropic.NewCodec(), client)},
		{domain.ProviderGoogle, domain.ModalityText, wire.NewAdapter(google.NewCodec(), client)},
		{domain.ProviderSeedream, domain.ModalityImage, images},
		{domain.ProviderHiggsfield, domain.ModalityImage, images},
		{domain.ProviderGoogle, domain.ModalityVideo, synthetic.NewVideoAdapter()},
		{domain.ProviderSuno, domain.ModalityMusic, synthetic.NewMusicAdapter()},
	}

	for _, route := range routes {
		if err := router.Register(route.provider, route.modality, route.adapter); err != nil {
			return nil, fmt.Errorf("failed to register %s/%s adapter: %w", route.provider, route.modality, err)
		}
	}

	return router, nil
}

func newJobStore(cfg *jobs.Config) (jobs.Store, error) {
	switch cfg.Backend {
	case jobs.BackendMemory, "":
		return jobs.NewMemoryStore(cfg.TTL), nil
	case jobs.BackendRedis:
		client := jobs.NewRedisClient(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}

		return jobs.NewRedisStore(client, cfg.TTL, cfg.RedisPrefix), nil
	default:
		return nil, errors.New("unknown jobs backend: " + cfg.Backend)
	}
}

func newPromptRepository(cfg *postgres.Config) (domain.PromptRepository, error) {
	if !cfg.Enabled() {
		observability.FromContext(context.Background()).Warn("DATABASE_URL not set, serving an empty in-memory catalog")
		return memory.NewPromptRepository(), nil
	}

	db, err := postgres.Connect(cfg)
	if err != nil {
		return nil, err
	}

	return postgres.NewPromptRepository(db), nil
}
