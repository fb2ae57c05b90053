package domain

import (
	"testing"
	"time"
)

func TestUser_HasPendingOTP(t *testing.T) {
	code := "654321"
	expiry := time.Now().Add(10 * time.Minute)

	tests := []struct {
		name string
		user User
		want bool
	}{
		{name: "code and expiry set", user: User{OTPCode: &code, OTPExpiry: &expiry}, want: true},
		{name: "neither set", user: User{}, want: false},
		{name: "code without expiry", user: User{OTPCode: &code}, want: false},
		{name: "expiry without code", user: User{OTPExpiry: &expiry}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.HasPendingOTP(); got != tt.want {
				t.Errorf("HasPendingOTP() = %v, want %v", got, tt.want)
			}
		})
	}
}
