package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yourusername/odds-radar/internal/database"
	"github.com/yourusername/odds-radar/internal/models"
)

// PostgresBookmakerRepository implements BookmakerRepository for PostgreSQL.
type PostgresBookmakerRepository struct {
	db *database.DB
}

// NewPostgresBookmakerRepository creates a new bookmaker repository.
func NewPostgresBookmakerRepository(db *database.DB) BookmakerRepository {
	return &PostgresBookmakerRepository{db: db}
}

// GetBySlug looks a bookmaker up by its slug.
func (r *PostgresBookmakerRepository) GetBySlug(ctx context.Context, slug string) (*models.Bookmaker, error) {
	query := `
		SELECT id, slug, display_name, role, created_at
		FROM bookmakers
		WHERE slug = $1
	`

	b := &models.Bookmaker{}
	err := r.db.GetPool().QueryRow(ctx, query, slug).Scan(
		&b.ID, &b.Slug, &b.DisplayName, &b.Role, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmaker %s: %w", slug, err)
	}
	return b, nil
}

// EnsureExists registers a bookmaker on first use. The upsert keeps a
// concurrent registration from failing on the slug constraint.
func (r *PostgresBookmakerRepository) EnsureExists(ctx context.Context, slug, displayName string, role models.BookmakerRole) (*models.Bookmaker, error) {
	query := `
		INSERT INTO bookmakers (slug, display_name, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET display_name = EXCLUDED.display_name
		RETURNING id, slug, display_name, role, created_at
	`

	b := &models.Bookmaker{}
	err := r.db.GetPool().QueryRow(ctx, query, slug, displayName, role).Scan(
		&b.ID, &b.Slug, &b.DisplayName, &b.Role, &b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure bookmaker %s: %w", slug, err)
	}
	return b, nil
}

// List returns every registered bookmaker ordered by slug.
func (r *PostgresBookmakerRepository) List(ctx context.Context) ([]*models.Bookmaker, error) {
	query := `
		SELECT id, slug, display_name, role, created_at
		FROM bookmakers
		ORDER BY slug
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmakers: %w", err)
	}
	defer rows.Close()

	var bookmakers []*models.Bookmaker
	for rows.Next() {
		b := &models.Bookmaker{}
		if err := rows.Scan(&b.ID, &b.Slug, &b.DisplayName, &b.Role, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmaker: %w", err)
		}
		bookmakers = append(bookmakers, b)
	}
	return bookmakers, rows.Err()
}
