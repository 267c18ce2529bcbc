package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/employee-registry/models"
)

// employeeColumns lists the employees table columns in scan order.
var employeeColumns = []string{"id", "name", "email", "department", "role", "date_joined"}

const employeeReturning = "RETURNING id, name, email, department, role, date_joined"

// buildInsertEmployeeQuery builds the INSERT for a new employee. The id and
// date_joined columns are omitted so the engine assigns both; the RETURNING
// clause hands the canonical record back in one round-trip.
func buildInsertEmployeeQuery(b sq.StatementBuilderType, employee models.Employee) (string, []any, error) {
	return b.Insert(employee.TableName()).
		Columns("name", "email", "department", "role").
		Values(employee.Name, employee.Email, employee.Department, employee.Role).
		Suffix(employeeReturning).
		ToSql()
}

// buildSelectEmployeeQuery builds the single-record lookup by ID.
func buildSelectEmployeeQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(employeeColumns...).
		From(models.Employee{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateEmployeeQuery builds the full-replacement UPDATE of the four
// mutable columns. date_joined is never touched. The RETURNING clause makes
// the statement double as an existence check: no row back means no record
// with that ID.
func buildUpdateEmployeeQuery(b sq.StatementBuilderType, employee models.Employee) (string, []any, error) {
	return b.Update(employee.TableName()).
		Set("name", employee.Name).
		Set("email", employee.Email).
		Set("department", employee.Department).
		Set("role", employee.Role).
		Where(sq.Eq{"id": employee.ID}).
		Suffix(employeeReturning).
		ToSql()
}

// buildDeleteEmployeeQuery builds the hard delete by ID.
func buildDeleteEmployeeQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Employee{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildListEmployeesQuery builds one page of the filtered listing, ordered by
// ID so pages are stable between requests. page is 1-indexed.
func buildListEmployeesQuery(b sq.StatementBuilderType, filter models.EmployeeFilter, page, pageSize int) (string, []any, error) {
	query := b.Select(employeeColumns...).
		From(models.Employee{}.TableName())
	query = applyEmployeeFilter(query, filter)

	return query.
		OrderBy("id").
		Limit(uint64(pageSize)).
		Offset(uint64(page-1) * uint64(pageSize)).
		ToSql()
}

// buildCountEmployeesQuery builds the total-count query over the same filter
// as the listing, so "total" stays correct regardless of the requested page.
func buildCountEmployeesQuery(b sq.StatementBuilderType, filter models.EmployeeFilter) (string, []any, error) {
	query := b.Select("COUNT(*)").
		From(models.Employee{}.TableName())
	query = applyEmployeeFilter(query, filter)

	return query.ToSql()
}

// applyEmployeeFilter adds the optional equality conditions of the list
// operation. Empty filter fields add no condition; non-empty fields are
// AND-combined by squirrel.
func applyEmployeeFilter(query sq.SelectBuilder, filter models.EmployeeFilter) sq.SelectBuilder {
	if filter.Department != "" {
		query = query.Where(sq.Eq{"department": filter.Department})
	}

	if filter.Role != "" {
		query = query.Where(sq.Eq{"role": filter.Role})
	}

	return query
}
