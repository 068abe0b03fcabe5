package domain

import "tail/internal/tailerr"

// Sentinel validation errors for the value objects in this package.
var (
	ErrEmptyAppName    = tailerr.New(tailerr.KindValidation, "app name is empty")
	ErrInvalidDuration = tailerr.New(tailerr.KindValidation, "duration must be non-negative")
	ErrInvalidRange    = tailerr.New(tailerr.KindValidation, "range end is before start")
)
