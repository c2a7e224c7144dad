// File: internal/profileclient/errors.go
package profileclient

import "errors"

// Typed errors mapped from the account API's 4xx responses. Anything else
// from the server surfaces as a generic failure.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrServiceUnavailable = errors.New("account service unavailable")
)
