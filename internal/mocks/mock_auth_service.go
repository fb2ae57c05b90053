package mocks

import (
	"context"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	SignupFunc         func(ctx context.Context, username, email, fullName, password string) (*domain.User, error)
	VerifyOTPFunc      func(ctx context.Context, email, code string) (*domain.User, error)
	LoginFunc          func(ctx context.Context, email, password string) (string, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, email, code, newPassword string) error
	ResendOTPFunc      func(ctx context.Context, email string) error
	GetProfileFunc     func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Signup registers a user
func (m *MockAuthService) Signup(ctx context.Context, username, email, fullName, password string) (*domain.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, username, email, fullName, password)
	}
	// Default behavior: pending account
	return &domain.User{ID: 1, Username: username, Email: email, FullName: fullName}, nil
}

// VerifyOTP activates an account
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) (*domain.User, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	// Default behavior: verified account
	return &domain.User{ID: 1, Email: email, IsVerified: true, IsActive: true}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: fixed token
	return "test_token", nil
}

// ForgotPassword issues a reset OTP
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// ResetPassword sets a new password
func (m *MockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, code, newPassword)
	}
	// Default behavior: success
	return nil
}

// ResendOTP redelivers an OTP
func (m *MockAuthService) ResendOTP(ctx context.Context, email string) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// GetProfile loads a user by id
func (m *MockAuthService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
