package mocks

import (
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// MockEmailService implements domain.EmailService interface for testing
type MockEmailService struct {
	SendOTPFunc     func(to, userName, code string) error
	SendWelcomeFunc func(to, userName string) error
}

// NewMockEmailService creates a new MockEmailService with default behaviors
func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// SendOTP sends an OTP email
func (m *MockEmailService) SendOTP(to, userName, code string) error {
	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(to, userName, code)
	}
	// Default behavior: success
	return nil
}

// SendWelcome sends a welcome email
func (m *MockEmailService) SendWelcome(to, userName string) error {
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(to, userName)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.EmailService = (*MockEmailService)(nil)
