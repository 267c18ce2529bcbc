package store

import (
	"context"

	"github.com/MKhiriev/employee-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// EmployeeRepository is the persistence contract of the employee table.
// Implementations own record identity: IDs and the date_joined timestamp are
// assigned by the storage engine, never by callers.
type EmployeeRepository interface {
	// Insert persists a new employee and returns it with the store-assigned
	// ID and DateJoined. Returns ErrEmployeeAlreadyExists when the name or
	// email collides with an existing record.
	Insert(ctx context.Context, employee models.Employee) (models.Employee, error)

	// Find returns the employee with the given ID or ErrEmployeeNotFound.
	Find(ctx context.Context, id int64) (models.Employee, error)

	// Update replaces the four mutable fields of the record identified by
	// employee.ID in a single statement. Returns ErrEmployeeNotFound when no
	// record has that ID and ErrEmployeeAlreadyExists when the new name or
	// email collides with a different record.
	Update(ctx context.Context, employee models.Employee) (models.Employee, error)

	// Delete removes the record with the given ID (hard delete).
	// Returns ErrEmployeeNotFound when no record has that ID.
	Delete(ctx context.Context, id int64) error

	// List returns one 1-indexed page of employees matching the filter,
	// ordered by ID, together with the total number of matches across all
	// pages. A page beyond the available results yields an empty slice and
	// the unchanged total.
	List(ctx context.Context, filter models.EmployeeFilter, page, pageSize int) ([]models.Employee, int64, error)
}

// ErrorClassifier normalises engine-specific driver errors so that the
// repository can translate them into sentinel errors without knowing which
// database engine is underneath.
type ErrorClassifier interface {
	// UniqueViolation reports whether err is the engine's rejection of a
	// write that would duplicate a value in a unique-constrained column.
	UniqueViolation(err error) bool
}
