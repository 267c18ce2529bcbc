package models

import "time"

// Employee is the single domain entity managed by the service.
// Persistence logic lives in the store package; this struct carries data only.
type Employee struct {
	// ID is the store-assigned unique identifier. IDs are monotonic and are
	// never reused after deletion.
	ID int64 `json:"id"`

	// Name is the employee's display name. Globally unique.
	Name string `json:"name"`

	// Email is the employee's contact address. Globally unique.
	Email string `json:"email"`

	// Department the employee belongs to. Optional.
	Department string `json:"department"`

	// Role of the employee within the department. Optional.
	Role string `json:"role"`

	// DateJoined is set by the store at creation time and never modified.
	// Exposed to API clients as "joining_date" (RFC 3339).
	DateJoined time.Time `json:"joining_date"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employees"
}

// EmployeeInput is the JSON payload accepted by the create and update
// endpoints. Name and Email are pointers so that the service layer can tell
// an absent key apart from an empty value: the create path rejects both with
// a validation error, while the update path treats an absent key as an
// internal failure (matching the wire behavior existing clients depend on).
type EmployeeInput struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
}

// EmployeeFilter holds the optional equality filters of the list operation.
// Empty fields are ignored; non-empty fields are AND-combined.
type EmployeeFilter struct {
	Department string
	Role       string
}
