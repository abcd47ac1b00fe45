package store

import (
	"context"
	"fmt"

	"github.com/jvreeken/boodschapp/internal/config"
	"github.com/jvreeken/boodschapp/internal/logger"
)

// Storages aggregates all repositories backed by the shared database
// connection.
type Storages struct {
	UserRepository UserRepository
	ListRepository ListRepository
}

// NewStorages connects to PostgreSQL using the given storage configuration,
// applies all pending migrations, and returns the repository aggregate.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ListRepository: NewListRepository(db, log),
	}, nil
}
