package model

import "errors"

// Error codes
const (
	ErrCodeUserNotFound       = "USR001"
	ErrCodeEmailTaken         = "USR002"
	ErrCodeInvalidCredentials = "USR003"
	ErrCodeAccountLocked      = "USR004"
	ErrCodeInvalidRefresh     = "USR005"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountLocked       = errors.New("account temporarily locked after repeated failed logins")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)
