package service

import (
	"context"

	"github.com/MKhiriev/employee-registry/models"
)

// AuthService owns the authentication flow: checking the configured operator
// credentials and issuing/verifying the bearer tokens that gate the employee
// endpoints.
type AuthService interface {
	// Login verifies the submitted credentials against the configured pair.
	// Returns ErrWrongCredentials on any mismatch, including missing fields.
	Login(ctx context.Context, credentials models.Credentials) error

	// CreateToken issues a signed, time-limited token for the given subject.
	CreateToken(ctx context.Context, subject string) (models.Token, error)

	// ParseToken validates a raw token string (signature, issuer, expiry)
	// and returns the decoded token or ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EmployeeService validates input, applies CRUD operations against the
// employee repository and translates store errors into domain error kinds.
type EmployeeService interface {
	// Create validates the payload and persists a new employee, returning
	// the stored record with its assigned ID.
	Create(ctx context.Context, input models.EmployeeInput) (models.Employee, error)

	// List returns the requested 1-indexed page of the filtered listing with
	// the service's fixed page size, plus the pagination counters.
	List(ctx context.Context, filter models.EmployeeFilter, page int) (models.EmployeeListResponse, error)

	// Get returns the employee with the given ID.
	Get(ctx context.Context, id int64) (models.Employee, error)

	// Update replaces all mutable fields of the employee with the given ID.
	Update(ctx context.Context, id int64, input models.EmployeeInput) (models.Employee, error)

	// Delete removes the employee with the given ID.
	Delete(ctx context.Context, id int64) error
}
