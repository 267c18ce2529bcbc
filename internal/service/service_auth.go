package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/employee-registry/internal/config"
	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/utils"
	"github.com/MKhiriev/employee-registry/models"
)

// authService is the concrete implementation of AuthService.
// There is no user table: the service holds the single configured operator
// credential pair and the JWT parameters, all read-only after construction.
type authService struct {
	// username and password are the configured operator credentials that
	// every login request is compared against.
	username string
	password string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the credentials and
// security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		username:      cfg.Username,
		password:      cfg.Password,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login checks the submitted credentials against the configured pair.
//
// Missing username or password fields fail the comparison like any other
// mismatch; both values are compared in constant time so the check does not
// leak which of the two fields was wrong.
//
// Returns nil on success or ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	usernameMatch := subtle.ConstantTimeCompare([]byte(credentials.Username), []byte(a.username))
	passwordMatch := subtle.ConstantTimeCompare([]byte(credentials.Password), []byte(a.password))

	if usernameMatch&passwordMatch != 1 {
		log.Error().Str("username", credentials.Username).Msg("login failed")
		return ErrWrongCredentials
	}

	return nil
}

// CreateToken issues a signed JWT for the given subject.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
