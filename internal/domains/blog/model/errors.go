package model

import "errors"

// Error codes
const (
	ErrCodeBlogPostNotFound = "BLG001"
	ErrCodeInvalidBlogPost  = "BLG002"
)

var (
	ErrBlogPostNotFound = errors.New("blog post not found")
)
