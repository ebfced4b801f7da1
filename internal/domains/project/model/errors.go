package model

import "errors"

// Error codes
const (
	ErrCodeProjectNotFound = "PRJ001"
	ErrCodeInvalidProject  = "PRJ002"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)
