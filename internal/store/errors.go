package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmployeeAlreadyExists is returned when an insert or update would
	// duplicate the name or email of an existing record. The store does not
	// distinguish which of the two constrained fields collided.
	ErrEmployeeAlreadyExists = errors.New("employee with this name or email already exists")

	// ErrEmployeeNotFound is returned when an operation targets an employee
	// ID that does not exist in the database.
	ErrEmployeeNotFound = errors.New("employee was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan employee rows")
)
