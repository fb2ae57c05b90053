package domain

import "time"

// User represents a user account in the system
type User struct {
	ID           uint
	Username     string
	Email        string
	FullName     string
	PasswordHash string `gorm:"column:hashed_password"`
	IsVerified   bool
	IsActive     bool
	OTPCode      *string
	OTPExpiry    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPendingOTP reports whether an OTP is currently stored for the user.
// The code and expiry fields are always set and cleared together.
func (u *User) HasPendingOTP() bool {
	return u.OTPCode != nil && u.OTPExpiry != nil
}

// Document represents an uploaded file owned by a user
type Document struct {
	ID               uint
	UserID           uint
	OriginalFilename string
	BlobName         string
	BlobURL          string
	FileSize         int64
	ContentType      string
	CreatedAt        time.Time
}

// TokenClaims represents the verified contents of a bearer token
type TokenClaims struct {
	UserID    uint  `json:"user_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}
