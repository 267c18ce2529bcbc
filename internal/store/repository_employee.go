package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/models"
)

// employeeRepository is the SQL-backed implementation of [EmployeeRepository].
// It handles all reads and writes against the "employees" table and relies on
// the connection's [ErrorClassifier] to recognise unique-constraint
// violations of whichever engine is underneath.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type employeeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a new employee record and returns the fully populated
// [models.Employee] with engine-assigned fields (ID, DateJoined).
//
// The INSERT carries a RETURNING clause, so uniqueness is checked atomically
// with the write: of two concurrent inserts colliding on name or email,
// exactly one scans a row and the other observes the constraint error.
//
// Error handling:
//   - engine unique violation → [ErrEmployeeAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *employeeRepository) Insert(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEmployeeQuery(r.db.builder, employee)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Insert").Msg("error: building query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// scan saved employee from db
	var saved models.Employee
	if err := row.Scan(&saved.ID, &saved.Name, &saved.Email, &saved.Department, &saved.Role, &saved.DateJoined); err != nil {
		log.Err(err).Str("func", "*employeeRepository.Insert").Msg("error: scanning error")

		if r.db.classifier.UniqueViolation(err) {
			return models.Employee{}, ErrEmployeeAlreadyExists
		}
		return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// Find retrieves the employee record with the given ID.
//
// Error handling:
//   - no matching row → [ErrEmployeeNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *employeeRepository) Find(ctx context.Context, id int64) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeeQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Find").Msg("error: building query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Employee
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ID, &found.Name, &found.Email, &found.Department, &found.Role, &found.DateJoined); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}

		log.Err(err).Str("func", "*employeeRepository.Find").Msg("error: scanning error")
		return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// Update replaces the name, email, department and role of the record
// identified by employee.ID in a single UPDATE ... RETURNING statement, so
// the existence check, the uniqueness check and the write cannot interleave
// with a concurrent writer. A failed update leaves the previous record
// untouched.
//
// Error handling:
//   - no matching row → [ErrEmployeeNotFound].
//   - engine unique violation → [ErrEmployeeAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *employeeRepository) Update(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEmployeeQuery(r.db.builder, employee)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Update").Msg("error: building query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Employee
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Department, &updated.Role, &updated.DateJoined); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		if r.db.classifier.UniqueViolation(err) {
			return models.Employee{}, ErrEmployeeAlreadyExists
		}

		log.Err(err).Str("func", "*employeeRepository.Update").Msg("error: scanning error")
		return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// Delete removes the employee record with the given ID.
//
// Error handling:
//   - zero affected rows → [ErrEmployeeNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEmployeeQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Delete").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Delete").Msg("error: executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Delete").Msg("error: reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// List returns the requested 1-indexed page of employees matching the filter
// plus the total match count. The count and page queries share the same
// filter conditions, so total is exact regardless of the requested page; a
// page past the end of the result set returns an empty (non-nil) slice.
func (r *employeeRepository) List(ctx context.Context, filter models.EmployeeFilter, page, pageSize int) ([]models.Employee, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountEmployeesQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.List").Msg("error: building count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*employeeRepository.List").Msg("error: counting employees")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listQuery, listArgs, err := buildListEmployeesQuery(r.db.builder, filter, page, pageSize)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.List").Msg("error: building list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.List").Msg("error: executing list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0, pageSize)
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Email, &employee.Department, &employee.Role, &employee.DateJoined); err != nil {
			log.Err(err).Str("func", "*employeeRepository.List").Msg("error: scanning row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*employeeRepository.List").Msg("error: iterating rows")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return employees, total, nil
}
