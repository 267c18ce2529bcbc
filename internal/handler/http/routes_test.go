package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/employee-registry/models"
	"github.com/stretchr/testify/assert"
)

func TestRoutes_LoginIsOpen(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) error {
			return nil
		},
		createTokenFn: func(_ context.Context, subject string) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token", Subject: subject}, nil
		},
	}
	h := newTestHandler(t, auth, &mockEmployeeService{})

	// No Authorization header: login must still be reachable.
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := serve(t, h, req)

	// An empty body is invalid JSON, but the request reached the handler
	// instead of being rejected by the auth middleware.
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_EmployeesRequireToken(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockEmployeeService{})

	endpoints := []struct {
		method string
		url    string
	}{
		{http.MethodPost, "/api/employees"},
		{http.MethodGet, "/api/employees"},
		{http.MethodGet, "/api/employees/1"},
		{http.MethodPut, "/api/employees/1"},
		{http.MethodDelete, "/api/employees/1"},
	}

	for _, e := range endpoints {
		t.Run(e.method+" "+e.url, func(t *testing.T) {
			rec := serve(t, h, httptest.NewRequest(e.method, e.url, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_UnknownMethodHidesRoute(t *testing.T) {
	h := newTestHandler(t, passingAuth(), &mockEmployeeService{})

	// PATCH is not registered for /login; the route must answer 404, not 405.
	rec := serve(t, h, httptest.NewRequest(http.MethodPatch, "/login", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_UnknownPath(t *testing.T) {
	h := newTestHandler(t, passingAuth(), &mockEmployeeService{})

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
