// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/employee-registry/internal/service"
	"github.com/MKhiriev/employee-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) error {
			return nil
		},
		createTokenFn: func(_ context.Context, subject string) (models.Token, error) {
			return models.Token{SignedString: signedToken, Subject: subject}, nil
		},
	}
	h := newTestHandler(t, auth, &mockEmployeeService{})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin","password":"password"}`))
	rec := serve(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, signedToken, body.AccessToken)
}

func TestLogin_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) error {
			return service.ErrWrongCredentials
		},
	}
	h := newTestHandler(t, auth, &mockEmployeeService{})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := serve(t, h, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", decodeMessage(t, rec))
}

func TestLogin_MissingFields(t *testing.T) {
	// Missing fields decode to empty strings and fail the credential check
	// like any other mismatch.
	auth := &mockAuthService{
		loginFn: func(_ context.Context, credentials models.Credentials) error {
			assert.Empty(t, credentials.Password)
			return service.ErrWrongCredentials
		},
	}
	h := newTestHandler(t, auth, &mockEmployeeService{})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin"}`))
	rec := serve(t, h, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", decodeMessage(t, rec))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockEmployeeService{})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{not json`))
	rec := serve(t, h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) error {
			return nil
		},
		createTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, errors.New("signing failed")
		},
	}
	h := newTestHandler(t, auth, &mockEmployeeService{})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin","password":"password"}`))
	rec := serve(t, h, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
