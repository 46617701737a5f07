package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidPIN   = errors.New("invalid access PIN")
	ErrInvalidToken = errors.New("invalid or missing token")
	ErrAuthDisabled = errors.New("authentication is not configured")
)
