package service

import "errors"

// Sentinel failures returned by services. Controllers translate these to
// HTTP statuses; services never produce user-facing text beyond the wrap.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrValidation         = errors.New("invalid input")
)
