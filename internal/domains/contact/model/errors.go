package model

import "errors"

// Error codes
const (
	ErrCodeMessageNotFound = "CNT001"
	ErrCodeInvalidMessage  = "CNT002"
)

var (
	ErrMessageNotFound = errors.New("contact message not found")
)
