package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/models"
)

func newTestEmployeeRepo(t *testing.T) (*employeeRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &employeeRepository{
		db: &DB{
			DB:         db,
			engine:     EnginePostgres,
			builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			classifier: NewPostgresErrorClassifier(),
			logger:     l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func employeeRows(employees ...models.Employee) *sqlmock.Rows {
	rows := sqlmock.NewRows(employeeColumns)
	for _, e := range employees {
		rows.AddRow(e.ID, e.Name, e.Email, e.Department, e.Role, e.DateJoined)
	}
	return rows
}

func TestInsert_Success(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()
	employee := models.Employee{
		Name:       "John Doe",
		Email:      "john.doe@x.com",
		Department: "Engineering",
		Role:       "Developer",
	}

	saved := employee
	saved.ID = 1
	saved.DateJoined = time.Now()

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(employee.Name, employee.Email, employee.Department, employee.Role).
		WillReturnRows(employeeRows(saved))

	created, err := repo.Insert(ctx, employee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != employee.Email {
		t.Errorf("expected email %s, got %s", employee.Email, created.Email)
	}
	if created.DateJoined.IsZero() {
		t.Error("expected store-assigned DateJoined, got zero value")
	}
}

func TestInsert_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()
	employee := models.Employee{Name: "John Doe", Email: "john.doe@x.com"}

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Insert(ctx, employee)
	if !errors.Is(err, ErrEmployeeAlreadyExists) {
		t.Fatalf("expected ErrEmployeeAlreadyExists, got %v", err)
	}
}

func TestInsert_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO employees").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Insert(ctx, models.Employee{Name: "John Doe", Email: "john.doe@x.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFind_Success(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.Employee{
		ID:         7,
		Name:       "Jane Doe",
		Email:      "jane.doe@x.com",
		Department: "Engineering",
		Role:       "Manager",
		DateJoined: time.Now(),
	}

	mock.ExpectQuery("SELECT id, name, email, department, role, date_joined FROM employees").
		WithArgs(int64(7)).
		WillReturnRows(employeeRows(stored))

	found, err := repo.Find(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != stored.Name || found.Email != stored.Email {
		t.Errorf("found record does not match stored one: %+v", found)
	}
}

func TestFind_NotFound(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, department, role, date_joined FROM employees").
		WithArgs(int64(404)).
		WillReturnRows(employeeRows())

	_, err := repo.Find(context.Background(), 404)
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	employee := models.Employee{
		ID:         3,
		Name:       "John Doe",
		Email:      "john.doe@corp.com",
		Department: "Sales",
		Role:       "Lead",
	}
	returned := employee
	returned.DateJoined = time.Now()

	mock.ExpectQuery("UPDATE employees SET").
		WithArgs(employee.Name, employee.Email, employee.Department, employee.Role, employee.ID).
		WillReturnRows(employeeRows(returned))

	updated, err := repo.Update(context.Background(), employee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Email != employee.Email {
		t.Errorf("expected email %s, got %s", employee.Email, updated.Email)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE employees SET").
		WillReturnRows(employeeRows())

	_, err := repo.Update(context.Background(), models.Employee{ID: 404, Name: "x", Email: "x@x.com"})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestUpdate_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE employees SET").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Update(context.Background(), models.Employee{ID: 3, Name: "x", Email: "taken@x.com"})
	if !errors.Is(err, ErrEmployeeAlreadyExists) {
		t.Fatalf("expected ErrEmployeeAlreadyExists, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM employees").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM employees").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 5)
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestDelete_ExecError(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM employees").
		WillReturnError(errors.New("db gone"))

	err := repo.Delete(context.Background(), 5)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestList_FilteredPage(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	filter := models.EmployeeFilter{Department: "Engineering"}
	stored := models.Employee{
		ID: 1, Name: "John Doe", Email: "john.doe@x.com",
		Department: "Engineering", Role: "Developer", DateJoined: time.Now(),
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees`).
		WithArgs("Engineering").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery("SELECT id, name, email, department, role, date_joined FROM employees").
		WithArgs("Engineering").
		WillReturnRows(employeeRows(stored))

	employees, total, err := repo.List(context.Background(), filter, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Errorf("expected total=1, got %d", total)
	}
	if len(employees) != 1 || employees[0].Department != "Engineering" {
		t.Errorf("unexpected page contents: %+v", employees)
	}
}

func TestList_PagePastEnd(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery("SELECT id, name, email, department, role, date_joined FROM employees").
		WillReturnRows(employeeRows())

	employees, total, err := repo.List(context.Background(), models.EmployeeFilter{}, 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 12 {
		t.Errorf("expected total to stay 12, got %d", total)
	}
	if employees == nil {
		t.Fatal("expected empty non-nil slice for page past the end")
	}
	if len(employees) != 0 {
		t.Errorf("expected empty page, got %d items", len(employees))
	}
}

func TestList_CountError(t *testing.T) {
	repo, mock, db := newTestEmployeeRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees`).
		WillReturnError(errors.New("db gone"))

	_, _, err := repo.List(context.Background(), models.EmployeeFilter{}, 1, 10)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
