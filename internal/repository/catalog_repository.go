package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/odds-radar/internal/database"
	"github.com/yourusername/odds-radar/internal/models"
)

// PostgresCatalogRepository implements CatalogRepository for PostgreSQL.
type PostgresCatalogRepository struct {
	db *database.DB
}

// NewPostgresCatalogRepository creates a new catalog repository.
func NewPostgresCatalogRepository(db *database.DB) CatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

// EnsureSport upserts a sport by name.
func (r *PostgresCatalogRepository) EnsureSport(ctx context.Context, name string) (*models.Sport, error) {
	query := `
		INSERT INTO sports (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at
	`

	s := &models.Sport{}
	err := r.db.GetPool().QueryRow(ctx, query, name).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure sport %s: %w", name, err)
	}
	return s, nil
}

// EnsureTournament upserts a tournament under a sport.
func (r *PostgresCatalogRepository) EnsureTournament(ctx context.Context, sportID uuid.UUID, name string, country *string) (*models.Tournament, error) {
	query := `
		INSERT INTO tournaments (sport_id, name, country)
		VALUES ($1, $2, $3)
		ON CONFLICT (sport_id, name) DO UPDATE SET country = COALESCE(EXCLUDED.country, tournaments.country)
		RETURNING id, sport_id, name, country, created_at
	`

	t := &models.Tournament{}
	err := r.db.GetPool().QueryRow(ctx, query, sportID, name, country).Scan(
		&t.ID, &t.SportID, &t.Name, &t.Country, &t.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure tournament %s: %w", name, err)
	}
	return t, nil
}
