package postgres_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/pronto/internal/domain"
	"github.com/davidbz/pronto/internal/storage/postgres"
)

func newMockRepo(t *testing.T) (*postgres.PromptRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return postgres.NewPromptRepository(sqlx.NewDb(db, "postgres")), mock
}

var promptCols = []string{
	"id", "title", "prompt_text", "model", "output_type", "tags",
	"source_url", "attribution", "image_url", "author", "created_at",
}

func TestPromptRepository_ListPrompts(t *testing.T) {
	ctx := context.Background()

	t.Run("should pass filters and map rows", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		created := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT .+ FROM prompts p LEFT JOIN users u .+ ORDER BY p.created_at DESC NULLS LAST, p.id LIMIT \$3`).
			WithArgs("gpt-4o", "", 20).
			WillReturnRows(sqlmock.NewRows(promptCols).
				AddRow("neon-city", "Neon City", "Draw a city", "gpt-4o", "text", "{ai,city}",
					"https://x.com/p/1", "@someone", "", "Admin", created))

		prompts, err := repo.ListPrompts(ctx, domain.PromptFilter{Model: "gpt-4o", Limit: 20})
		require.NoError(t, err)
		require.Len(t, prompts, 1)
		require.Equal(t, "neon-city", prompts[0].ID)
		require.Equal(t, []string{"ai", "city"}, prompts[0].Tags)
		require.Equal(t, "Admin", prompts[0].Author)
		require.True(t, created.Equal(prompts[0].CreatedAt))
	})

	t.Run("should return empty slice for no rows", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM prompts p`).
			WithArgs("", "image", 5).
			WillReturnRows(sqlmock.NewRows(promptCols))

		prompts, err := repo.ListPrompts(ctx, domain.PromptFilter{OutputType: "image", Limit: 5})
		require.NoError(t, err)
		require.NotNil(t, prompts)
		require.Empty(t, prompts)
	})

	t.Run("should tolerate nullable title, output type and timestamp", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM prompts p`).
			WithArgs("", "", 20).
			WillReturnRows(sqlmock.NewRows(promptCols).
				AddRow("legacy", nil, "Draw a fox", "dall-e-3", nil, nil, "", "", "", "Admin", nil))

		prompts, err := repo.ListPrompts(ctx, domain.PromptFilter{Limit: 20})
		require.NoError(t, err)
		require.Len(t, prompts, 1)
		require.Equal(t, "legacy", prompts[0].ID)
		require.Empty(t, prompts[0].Title)
		require.Empty(t, prompts[0].OutputType)
		require.True(t, prompts[0].CreatedAt.IsZero())

		raw, err := json.Marshal(prompts[0])
		require.NoError(t, err)
		require.NotContains(t, string(raw), "created_at")
	})

	t.Run("should wrap query errors", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM prompts p`).WillReturnError(errors.New("boom"))

		_, err := repo.ListPrompts(ctx, domain.PromptFilter{Limit: 5})
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to list prompts")
	})
}

func TestPromptRepository_GetPrompt(t *testing.T) {
	ctx := context.Background()

	t.Run("should map missing row to ErrPromptNotFound", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ WHERE p.id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(promptCols))

		_, err := repo.GetPrompt(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrPromptNotFound)
	})

	t.Run("should return prompt with empty tags", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ WHERE p.id = \$1`).
			WithArgs("p1").
			WillReturnRows(sqlmock.NewRows(promptCols).
				AddRow("p1", "T", "text", "veo-3", "video", nil, "", "", "", "maria", time.Now()))

		prompt, err := repo.GetPrompt(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, "maria", prompt.Author)
		require.Equal(t, []string{}, prompt.Tags)
	})
}

func TestPromptRepository_ListModels(t *testing.T) {
	t.Run("should return distinct models", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT DISTINCT model FROM prompts ORDER BY model`).
			WillReturnRows(sqlmock.NewRows([]string{"model"}).AddRow("gpt-4o").AddRow("veo-3"))

		models, err := repo.ListModels(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"gpt-4o", "veo-3"}, models)
	})
}

func TestPromptRepository_SumMetrics(t *testing.T) {
	t.Run("should scan summed counters", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT\s+COALESCE\(SUM\(views\), 0\) AS views`).
			WithArgs("p1").
			WillReturnRows(sqlmock.NewRows([]string{"views", "likes", "shares", "comments"}).
				AddRow(150, 30, 4, 9))

		metrics, err := repo.SumMetrics(context.Background(), "p1")
		require.NoError(t, err)
		require.Equal(t, domain.PromptMetrics{Views: 150, Likes: 30, Shares: 4, Comments: 9}, *metrics)
	})
}

func TestPromptRepository_Ping(t *testing.T) {
	t.Run("should ping and run a probe query", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing()
		mock.ExpectQuery(`SELECT 1`).WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		repo := postgres.NewPromptRepository(sqlx.NewDb(db, "postgres"))
		require.NoError(t, repo.Ping(context.Background()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should report ping failure", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		repo := postgres.NewPromptRepository(sqlx.NewDb(db, "postgres"))
		err = repo.Ping(context.Background())
		require.Error(t, err)
		require.Contains(t, err.Error(), "database ping failed")
	})
}
