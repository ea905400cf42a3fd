package repository

import (
	"fmt"

	"github.com/yourusername/odds-radar/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Event       EventRepository
	FixtureLink FixtureLinkRepository
	Snapshot    SnapshotRepository
	Run         RunRepository
	Bookmaker   BookmakerRepository
	Catalog     CatalogRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Event:       NewPostgresEventRepository(db),
		FixtureLink: NewPostgresFixtureLinkRepository(db),
		Snapshot:    NewPostgresSnapshotRepository(db),
		Run:         NewPostgresRunRepository(db),
		Bookmaker:   NewPostgresBookmakerRepository(db),
		Catalog:     NewPostgresCatalogRepository(db),
	}, nil
}
