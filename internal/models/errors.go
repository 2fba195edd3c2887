package models

import "errors"

// Общие ошибки для всех слоев
var (
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingColumns    = errors.New("missing required columns")
	ErrValidation        = errors.New("validation error")
	ErrJobAlreadyRunning = errors.New("job already running")
)
