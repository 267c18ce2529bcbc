package models

// Credentials is the login request payload. The service compares it against
// the single username/password pair supplied through configuration; there is
// no user table behind it.
type Credentials struct {
	// Username of the API operator account.
	Username string `json:"username"`

	// Password of the API operator account. Never logged.
	Password string `json:"password"`
}
