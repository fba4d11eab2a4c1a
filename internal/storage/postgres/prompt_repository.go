package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/davidbz/pronto/internal/domain"
)

const promptColumns = `
		p.id, p.title, p.prompt_text, p.model, p.output_type, p.tags,
		COALESCE(p.source_url, '') AS source_url,
		COALESCE(p.attribution, '') AS attribution,
		COALESCE(p.image_url, '') AS image_url,
		COALESCE(u.username, 'Admin') AS author,
		p.created_at
	FROM prompts p
	LEFT JOIN users u ON u.id = p.submitted_by`

type promptRow struct {
	ID          string         `db:"id"`
	Title       sql.NullString `db:"title"`
	PromptText  string         `db:"prompt_text"`
	Model       string         `db:"model"`
	OutputType  sql.NullString `db:"output_type"`
	Tags        pq.StringArray `db:"tags"`
	SourceURL   string         `db:"source_url"`
	Attribution string         `db:"attribution"`
	ImageURL    string         `db:"image_url"`
	Author      string         `db:"author"`
	CreatedAt   sql.NullTime   `db:"created_at"`
}

func (r *promptRow) toDomain() *domain.Prompt {
	tags := []string(r.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &domain.Prompt{
		ID:          r.ID,
		Title:       r.Title.String,
		PromptText:  r.PromptText,
		Model:       r.Model,
		OutputType:  r.OutputType.String,
		Tags:        tags,
		SourceURL:   r.SourceURL,
		Attribution: r.Attribution,
		ImageURL:    r.ImageURL,
		Author:      r.Author,
		CreatedAt:   r.CreatedAt.Time,
	}
}

// PromptRepository implements domain.PromptRepository.
type PromptRepository struct {
	db *sqlx.DB
}

// NewPromptRepository creates a new prompt repository.
func NewPromptRepository(db *sqlx.DB) *PromptRepository {
	return &PromptRepository{
		db: db,
	}
}

// Ping reports whether the catalog database is reachable.
func (r *PromptRepository) Ping(ctx context.Context) error {
	return Health(ctx, r.db)
}

// ListPrompts returns prompts matching the filter, newest first.
func (r *PromptRepository) ListPrompts(ctx context.Context, filter domain.PromptFilter) ([]*domain.Prompt, error) {
	query := `SELECT` + promptColumns + `
	WHERE ($1 = '' OR p.model = $1)
	  AND ($2 = '' OR p.output_type = $2)
	ORDER BY p.created_at DESC NULLS LAST, p.id
	LIMIT $3`

	var rows []promptRow
	if err := r.db.SelectContext(ctx, &rows, query, filter.Model, filter.OutputType, filter.Limit); err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}

	prompts := make([]*domain.Prompt, 0, len(rows))
	for i := range rows {
		prompts = append(prompts, rows[i].toDomain())
	}

	return prompts, nil
}

// GetPrompt retrieves a prompt by its slug.
func (r *PromptRepository) GetPrompt(ctx context.Context, promptID string) (*domain.Prompt, error) {
	query := `SELECT` + promptColumns + `
	WHERE p.id = $1`

	var row promptRow
	if err := r.db.GetContext(ctx, &row, query, promptID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPromptNotFound
		}
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}

	return row.toDomain(), nil
}

// ListModels returns distinct model names in the catalog.
func (r *PromptRepository) ListModels(ctx context.Context) ([]string, error) {
	var models []string
	if err := r.db.SelectContext(ctx, &models, `SELECT DISTINCT model FROM prompts ORDER BY model`); err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	return models, nil
}

// SumMetrics totals engagement across every metric row for a prompt.
// Aggregates over zero rows collapse to zero through COALESCE.
func (r *PromptRepository) SumMetrics(ctx context.Context, promptID string) (*domain.PromptMetrics, error) {
	query := `
		SELECT
			COALESCE(SUM(views), 0) AS views,
			COALESCE(SUM(likes), 0) AS likes,
			COALESCE(SUM(shares), 0) AS shares,
			COALESCE(SUM(comments), 0) AS comments
		FROM prompt_metrics
		WHERE prompt_id = $1`

	var metrics domain.PromptMetrics
	if err := r.db.GetContext(ctx, &metrics, query, promptID); err != nil {
		return nil, fmt.Errorf("failed to sum metrics: %w", err)
	}

	return &metrics, nil
}
