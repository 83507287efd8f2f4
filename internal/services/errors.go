package services

import "errors"

// Sentinel errors the handlers translate to HTTP statuses. Unknown email and
// wrong password both surface as ErrInvalidCredentials so login failures
// leak nothing about which accounts exist.
var (
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrDescriptionRequired = errors.New("description is required")
	ErrImageRequired       = errors.New("at least one image is required")
)
