package service

import "errors"

var (
	// ErrInvalidDataProvided is returned by the create path when the payload
	// lacks a non-empty name or email.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrIncompleteEmployeeData is returned by the update path when the
	// payload omits the name or email key entirely. Unlike the create path
	// this is treated as an unexpected (internal-class) failure, preserving
	// the wire behavior existing clients rely on.
	ErrIncompleteEmployeeData = errors.New("incomplete employee data in update payload")

	// ErrWrongCredentials is returned on any login failure: unknown
	// username, wrong password, or missing fields.
	ErrWrongCredentials = errors.New("wrong username or password")

	// ErrTokenCreationFailed wraps failures while signing a new token.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single unauthorized-class error all
	// token verification failures (tampering, expiry, wrong issuer) are
	// normalised to.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
