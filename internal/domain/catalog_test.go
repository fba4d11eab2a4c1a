package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/mocks"
)

func TestCatalogService_ListPrompts(t *testing.T) {
	ctx := context.Background()

	t.Run("should apply default limit and attach metrics", func(t *testing.T) {
		repo := mocks.NewMockPromptRepository(t)
		catalog := domain.NewCatalogService(repo)

		repo.EXPECT().ListPrompts(mock.Anything, domain.PromptFilter{Model: "gpt-4o", Limit: 20}).
			Return([]*domain.Prompt{{ID: "p1"}, {ID: "p2"}}, nil)
		repo.EXPECT().SumMetrics(mock.Anything, "p1").
			Return(&domain.PromptMetrics{Views: 10, Likes: 2}, nil)
		repo.EXPECT().SumMetrics(mock.Anything, "p2").Return(nil, nil)

		prompts, err := catalog.ListPrompts(ctx, domain.PromptFilter{Model: "gpt-4o"})
		require.NoError(t, err)
		require.Len(t, prompts, 2)
		require.Equal(t, int64(10), prompts[0].Metrics.Views)
		require.Equal(t, domain.PromptMetrics{}, prompts[1].Metrics)
	})

	t.Run("should cap oversized limit", func(t *testing.T) {
		repo := mocks.NewMockPromptRepository(t)
		catalog := domain.NewCatalogService(repo)

		repo.EXPECT().ListPrompts(mock.Anything, domain.PromptFilter{Limit: domain.MaxListLimit}).
			Return([]*domain.Prompt{}, nil)

		prompts, err := catalog.ListPrompts(ctx, domain.PromptFilter{Limit: 5000})
		require.NoError(t, err)
		require.Empty(t, prompts)
	})

	t.Run("should wrap repository errors", func(t *testing.T) {
		repo := mocks.NewMockPromptRepository(t)
		catalog := domain.NewCatalogService(repo)

		repo.EXPECT().ListPrompts(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		_, err := catalog.ListPrompts(ctx, domain.PromptFilter{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "db down")
	})
}

func TestCatalogService_PromptsByModel(t *testing.T) {
	t.Run("should default limit to ten", func(t *testing.T) {
		repo := mocks.NewMockPromptRepository(t)
		catalog := domain.NewCatalogService(repo)

		repo.EXPECT().ListPrompts(mock.Anything, domain.PromptFilter{Model: "veo-3", Limit: 10}).
			Return([]*domain.Prompt{}, nil)

		_, err := catalog.PromptsByModel(context.Background(), "veo-3", 0)
		require.NoError(t, err)
	})

	t.Run("should require model", func(t *testing.T) {
		catalog := domain.NewCatalogService(mocks.NewMockPromptRepository(t))
		_, err := catalog.PromptsByModel(context.Background(), "", 5)
		require.Error(t, err)
	})
}

func TestCatalogService_GetPrompt(t *testing.T) {
	t.Run("should propagate not found", func(t *testing.T) {
		repo := mocks.NewMockPromptRepository(t)
		catalog := domain.NewCatalogService(repo)

		repo.EXPECT().GetPrompt(mock.Anything, "missing").Return(nil, domain.ErrPromptNotFound)

		_, err := catalog.GetPrompt(context.Background(), "missing")
		require.ErrorIs(t, err, domain.ErrPromptNotFound)
	})

	t.Run("should attach metrics", func(t *testing.T) {
		repo := mocks.NewMockPromptRepository(t)
		catalog := domain.NewCatalogService(repo)

		repo.EXPECT().GetPrompt(mock.Anything, "p1").Return(&domain.Prompt{ID: "p1", Author: "Admin"}, nil)
		repo.EXPECT().SumMetrics(mock.Anything, "p1").
			Return(&domain.PromptMetrics{Views: 3, Likes: 2, Shares: 1, Comments: 4}, nil)

		prompt, err := catalog.GetPrompt(context.Background(), "p1")
		require.NoError(t, err)
		require.Equal(t, int64(4), prompt.Metrics.Comments)
	})
}

func TestCatalogService_ListModels(t *testing.T) {
	t.Run("should never return nil", func(t *testing.T) {
		repo := mocks.NewMockPromptRepository(t)
		catalog := domain.NewCatalogService(repo)

		repo.EXPECT().ListModels(mock.Anything).Return(nil, nil)

		models, err := catalog.ListModels(context.Background())
		require.NoError(t, err)
		require.NotNil(t, models)
		require.Empty(t, models)
	})
}

func TestIsClientError(t *testing.T) {
	t.Run("should classify errors", func(t *testing.T) {
		require.True(t, domain.IsClientError(domain.ErrInvalidModel))
		require.True(t, domain.IsClientError(domain.ErrEmptyPrompt))
		require.True(t, domain.IsClientError(&domain.PlatformCredentialsUnavailableError{Provider: domain.ProviderSuno}))
		require.False(t, domain.IsClientError(errors.New("boom")))
		require.False(t, domain.IsClientError(domain.ErrJobNotFound))
	})
}
