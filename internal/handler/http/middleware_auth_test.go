package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/employee-registry/internal/service"
	"github.com/MKhiriev/employee-registry/internal/utils"
	"github.com/MKhiriev/employee-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "no authorization header", authHeader: ""},
		{name: "header without token part", authHeader: "Bearer"},
		{name: "header with empty token", authHeader: "Bearer "},
		{name: "invalid token", authHeader: "Bearer tampered.jwt.token"},
	}

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	// The EmployeeService must never be reached by an unauthorized request:
	// nil function fields would panic if any handler executed.
	h := newTestHandler(t, auth, &mockEmployeeService{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := serve(t, h, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_SubjectInjectedIntoContext(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Subject: "admin"}, nil
		},
	}

	var gotSubject string
	employees := &mockEmployeeService{
		listFn: func(ctx context.Context, _ models.EmployeeFilter, _ int) (models.EmployeeListResponse, error) {
			subject, ok := utils.GetSubjectFromContext(ctx)
			require.True(t, ok)
			gotSubject = subject
			return models.EmployeeListResponse{Employees: []models.Employee{}}, nil
		},
	}
	h := newTestHandler(t, auth, employees)

	rec := serve(t, h, authorize(httptest.NewRequest(http.MethodGet, "/api/employees", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", gotSubject)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantToken  string
		wantErr    error
	}{
		{
			name:       "well-formed bearer header",
			authHeader: "Bearer signed.jwt.token",
			wantToken:  "signed.jwt.token",
		},
		{
			name:       "scheme only",
			authHeader: "Bearer",
			wantErr:    ErrInvalidAuthorizationHeader,
		},
		{
			name:       "empty token part",
			authHeader: "Bearer ",
			wantErr:    ErrEmptyToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.authHeader)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
