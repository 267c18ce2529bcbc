package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/employee-registry/internal/config"
	"github.com/MKhiriev/employee-registry/internal/logger"
)

// Storages is the container of all repositories handed to the service layer.
type Storages struct {
	EmployeeRepository EmployeeRepository
}

// NewStorages connects to the configured database engine, applies pending
// migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		EmployeeRepository: NewEmployeeRepository(db, log),
	}, nil
}
