package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrInvalidInput         = errors.New("invalid input")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrMissingToken         = errors.New("missing token")
	ErrInvalidToken         = errors.New("invalid token")
	ErrExpiredToken         = fmt.Errorf("%w: expired", ErrInvalidToken)
	ErrPrincipalNotFound    = errors.New("principal not found")
	ErrForbidden            = errors.New("forbidden")
)
