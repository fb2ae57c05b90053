package domain

import "errors"

// Account errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("email or username already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotVerified     = errors.New("account not verified")
	ErrUserDeactivated     = errors.New("account is deactivated")
	ErrUserAlreadyVerified = errors.New("user already verified")
)

// OTP errors
var (
	ErrOTPNotFound = errors.New("no otp found for this user")
	ErrOTPExpired  = errors.New("otp has expired")
	ErrOTPInvalid  = errors.New("invalid otp code")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Document errors
var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrFileTypeNotAllowed = errors.New("file type is not supported")
	ErrFileTooLarge       = errors.New("file is too large")
)
