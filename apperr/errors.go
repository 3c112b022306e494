// Package apperr holds the error values shared between the storage,
// service and HTTP layers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingToken       = errors.New("authorization token required")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrConflict           = errors.New("email already registered")
	ErrInvalidTenant      = errors.New("invalid restaurant identifier")
)

// TenantNotFoundError reports a menu table that does not exist.
type TenantNotFoundError struct {
	Table string
}

func (e *TenantNotFoundError) Error() string {
	return fmt.Sprintf("menu table %s does not exist", e.Table)
}

// Is lets callers match the error against ErrNotFound.
func (e *TenantNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
