// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the employee-registry HTTP API.
//
// The primary abstraction is [APIClient], which decouples callers from the
// wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAPIClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/employee-registry/models"
)

// APIClient defines typed access to the employee-registry server.
// Implementations are responsible for serialisation, bearer token management,
// and mapping transport-level errors to the sentinel values defined in this
// package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically by a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with the configured credentials and stores the
	// issued bearer token via SetToken. Returns [ErrUnauthorized] (wrapped)
	// when the credentials are rejected.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// CreateEmployee submits a new employee record. Returns [ErrBadRequest]
	// (wrapped) on validation failure or a name/email collision.
	CreateEmployee(ctx context.Context, input models.EmployeeInput) error

	// Employees fetches one page of the filtered employee listing.
	Employees(ctx context.Context, filter models.EmployeeFilter, page int) (models.EmployeeListResponse, error)

	// Employee fetches a single record by ID. Returns [ErrNotFound] (wrapped)
	// when no such record exists.
	Employee(ctx context.Context, id int64) (models.Employee, error)

	// UpdateEmployee replaces all mutable fields of the record with the given
	// ID. Returns [ErrNotFound] or [ErrBadRequest] (wrapped) on failure.
	UpdateEmployee(ctx context.Context, id int64, input models.EmployeeInput) error

	// DeleteEmployee removes the record with the given ID. Returns
	// [ErrNotFound] (wrapped) when no such record exists.
	DeleteEmployee(ctx context.Context, id int64) error
}
