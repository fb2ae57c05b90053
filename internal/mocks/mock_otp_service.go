package mocks

import (
	"time"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	GenerateFunc func() string
	ExpiryFunc   func(now time.Time) time.Time
	IsValidFunc  func(expiry, now time.Time) bool
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Generate returns an OTP code
func (m *MockOTPService) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	// Default behavior: fixed code
	return "123456"
}

// Expiry returns the expiry for a code issued at now
func (m *MockOTPService) Expiry(now time.Time) time.Time {
	if m.ExpiryFunc != nil {
		return m.ExpiryFunc(now)
	}
	// Default behavior: ten minutes out
	return now.Add(10 * time.Minute)
}

// IsValid reports whether the code is still usable
func (m *MockOTPService) IsValid(expiry, now time.Time) bool {
	if m.IsValidFunc != nil {
		return m.IsValidFunc(expiry, now)
	}
	// Default behavior: real comparison
	return now.Before(expiry)
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
