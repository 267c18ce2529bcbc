package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/store"
	"github.com/MKhiriev/employee-registry/models"
)

// employeePageSize is the fixed number of records per listing page.
const employeePageSize = 10

// employeeService is the concrete implementation of EmployeeService. It
// validates payloads before touching the repository and lets the store's
// sentinel errors pass through wrapped, so handlers can match them with
// errors.Is.
type employeeService struct {
	// employeeRepository is the data-access layer for the employees table.
	employeeRepository store.EmployeeRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewEmployeeService constructs an EmployeeService wired to the given
// EmployeeRepository.
func NewEmployeeService(employeeRepository store.EmployeeRepository, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

// Create validates that the payload carries a non-empty name and email and
// persists the new record.
//
// Returns the stored record (with store-assigned ID and DateJoined) or:
//   - ErrInvalidDataProvided if name or email is absent or empty.
//   - A wrapped storage error if the repository call fails (e.g. a
//     name/email collision — see store.ErrEmployeeAlreadyExists).
func (s *employeeService) Create(ctx context.Context, input models.EmployeeInput) (models.Employee, error) {
	log := logger.FromContext(ctx)

	if input.Name == nil || *input.Name == "" || input.Email == nil || *input.Email == "" {
		log.Error().Any("input", input).Msg("invalid employee data provided")
		return models.Employee{}, ErrInvalidDataProvided
	}

	created, err := s.employeeRepository.Insert(ctx, models.Employee{
		Name:       *input.Name,
		Email:      *input.Email,
		Department: input.Department,
		Role:       input.Role,
	})
	if err != nil {
		log.Err(err).Str("name", *input.Name).Msg("employee creation ended with error")
		return models.Employee{}, fmt.Errorf("employee creation ended with error: %w", err)
	}

	return created, nil
}

// List returns one page of the filtered listing together with the pagination
// counters: the exact total across all pages, the page count
// (ceil(total/pageSize)) and the requested page echoed back.
//
// A page below 1 is treated as page 1. A filter value matching nothing yields
// an empty page with total 0, not an error.
func (s *employeeService) List(ctx context.Context, filter models.EmployeeFilter, page int) (models.EmployeeListResponse, error) {
	log := logger.FromContext(ctx)

	if page < 1 {
		page = 1
	}

	employees, total, err := s.employeeRepository.List(ctx, filter, page, employeePageSize)
	if err != nil {
		log.Err(err).Any("filter", filter).Int("page", page).Msg("employee listing ended with error")
		return models.EmployeeListResponse{}, fmt.Errorf("employee listing ended with error: %w", err)
	}

	pages := int((total + employeePageSize - 1) / employeePageSize)

	return models.EmployeeListResponse{
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		Employees:   employees,
	}, nil
}

// Get returns the employee with the given ID or a wrapped
// store.ErrEmployeeNotFound.
func (s *employeeService) Get(ctx context.Context, id int64) (models.Employee, error) {
	log := logger.FromContext(ctx)

	found, err := s.employeeRepository.Find(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("employee lookup ended with error")
		return models.Employee{}, fmt.Errorf("employee lookup ended with error: %w", err)
	}

	return found, nil
}

// Update replaces all four mutable fields of the record with the given ID.
//
// The payload must carry both the name and email keys; an absent key fails
// with ErrIncompleteEmployeeData, which handlers map to an internal-class
// response rather than a validation one (the asymmetry with Create is
// deliberate wire compatibility). Not-found and collision failures pass
// through from the store.
func (s *employeeService) Update(ctx context.Context, id int64, input models.EmployeeInput) (models.Employee, error) {
	log := logger.FromContext(ctx)

	if input.Name == nil || input.Email == nil {
		log.Error().Int64("id", id).Any("input", input).Msg("incomplete employee data in update payload")
		return models.Employee{}, ErrIncompleteEmployeeData
	}

	updated, err := s.employeeRepository.Update(ctx, models.Employee{
		ID:         id,
		Name:       *input.Name,
		Email:      *input.Email,
		Department: input.Department,
		Role:       input.Role,
	})
	if err != nil {
		log.Err(err).Int64("id", id).Msg("employee update ended with error")
		return models.Employee{}, fmt.Errorf("employee update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes the employee with the given ID or returns a wrapped
// store.ErrEmployeeNotFound when no such record exists (including records
// already deleted).
func (s *employeeService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.employeeRepository.Delete(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("employee deletion ended with error")
		return fmt.Errorf("employee deletion ended with error: %w", err)
	}

	return nil
}
