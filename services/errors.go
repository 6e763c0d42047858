package services

import "errors"

// Common errors
var (
	ErrNoteNotFound      = errors.New("note not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrContentRequired   = errors.New("note content is required")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrNotProtected      = errors.New("note is not password protected")
	ErrEditingNotAllowed = errors.New("editing not allowed")
	ErrInternal          = errors.New("internal server error")
)
