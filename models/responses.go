package models

// MessageResponse is the uniform JSON body returned for confirmations and
// for every failure: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the bearer token issued after a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// EmployeeListResponse is the paginated payload of GET /api/employees.
type EmployeeListResponse struct {
	// Total is the number of records matching the filters across all pages.
	Total int64 `json:"total"`

	// Pages is ceil(Total / page size).
	Pages int `json:"pages"`

	// CurrentPage echoes the requested 1-indexed page, even when it lies
	// beyond the last page of results.
	CurrentPage int `json:"current_page"`

	// Employees holds the records of the current page. Never null: an empty
	// page serializes as [].
	Employees []Employee `json:"employees"`
}
