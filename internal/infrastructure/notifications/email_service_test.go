package notifications

import (
	"strings"
	"testing"
)

func TestEmailServiceImpl_MockModeWithoutHost(t *testing.T) {
	svc := NewEmailService("", 0, "", "", "noreply@skynet.test", "Skynet")

	if err := svc.SendOTP("a@x.com", "Alice", "654321"); err != nil {
		t.Errorf("mock mode must not fail: %v", err)
	}
	if err := svc.SendWelcome("a@x.com", "Alice"); err != nil {
		t.Errorf("mock mode must not fail: %v", err)
	}
}

func TestOTPBody(t *testing.T) {
	body := otpBody("Alice", "654321")
	if !strings.Contains(body, "654321") {
		t.Error("body must contain the code")
	}
	if !strings.Contains(body, "Alice") {
		t.Error("body must address the user by name")
	}

	anonymous := otpBody("", "654321")
	if !strings.Contains(anonymous, "Hi there") {
		t.Error("missing name must fall back to a generic greeting")
	}
}

func TestWelcomeBody(t *testing.T) {
	body := welcomeBody("Alice")
	if !strings.Contains(body, "Alice") {
		t.Error("body must address the user by name")
	}
}
