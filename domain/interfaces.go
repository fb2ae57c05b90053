package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	// SetOTP stores a fresh OTP code and expiry on the user row,
	// overwriting any previous code.
	SetOTP(ctx context.Context, userID uint, code string, expiry time.Time) error
	// Activate marks the user verified and active and clears the OTP
	// fields in a single guarded update. The update only applies while
	// the stored code still equals otpCode, so concurrent verifications
	// cannot both consume the same code; the loser gets ErrOTPInvalid.
	Activate(ctx context.Context, userID uint, otpCode string) error
	// ResetPassword replaces the password hash and clears the OTP fields
	// under the same guard as Activate. Verification flags are untouched.
	ResetPassword(ctx context.Context, userID uint, otpCode, passwordHash string) error
}

// DocumentRepository defines document metadata access operations
type DocumentRepository interface {
	Create(ctx context.Context, doc *Document) error
	FindByID(ctx context.Context, id, userID uint) (*Document, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]Document, error)
	Delete(ctx context.Context, id, userID uint) error
}

// AuthService defines the account lifecycle business logic
type AuthService interface {
	Signup(ctx context.Context, username, email, fullName, password string) (*User, error)
	VerifyOTP(ctx context.Context, email, code string) (*User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	ResendOTP(ctx context.Context, email string) error
	GetProfile(ctx context.Context, userID uint) (*User, error)
}

// DocumentService defines document business logic
type DocumentService interface {
	Upload(ctx context.Context, userID uint, filename, contentType string, data []byte) (*Document, error)
	List(ctx context.Context, userID uint, offset, limit int) ([]Document, error)
	Get(ctx context.Context, userID, documentID uint) (*Document, error)
	Download(ctx context.Context, userID, documentID uint) (*Document, []byte, error)
	Delete(ctx context.Context, userID, documentID uint) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines bearer token operations
type TokenService interface {
	Generate(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// OTPService defines one-time-passcode operations
type OTPService interface {
	// Generate returns a uniformly random numeric code. It never fails.
	Generate() string
	// Expiry returns the expiry instant for a code issued at now.
	Expiry(now time.Time) time.Time
	// IsValid reports whether a code with the given expiry is still
	// usable at now. Expiry instants are compared in UTC.
	IsValid(expiry, now time.Time) bool
}

// EmailService defines outbound mail operations
type EmailService interface {
	SendOTP(to, userName, code string) error
	SendWelcome(to, userName string) error
}

// BlobStorage defines the object storage operations documents are
// backed by. Implementations are keyed by an opaque blob name.
type BlobStorage interface {
	Upload(ctx context.Context, data []byte, blobName, contentType string) (string, error)
	Download(ctx context.Context, blobName string) ([]byte, error)
	Delete(ctx context.Context, blobName string) error
	List(ctx context.Context, prefix string) ([]string, error)
	Exists(ctx context.Context, blobName string) (bool, error)
}
