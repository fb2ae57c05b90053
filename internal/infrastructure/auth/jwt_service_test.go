package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

const testSecret = "test-secret-key-for-unit-tests"

func newJWTServiceForTest(t *testing.T, ttl time.Duration) domain.TokenService {
	t.Helper()
	svc, err := NewJWTService(testSecret, "HS256", "skynetsvc", ttl)
	if err != nil {
		t.Fatalf("NewJWTService: %v", err)
	}
	return svc
}

func TestNewJWTService_RejectsNonHMACAlgorithms(t *testing.T) {
	for _, alg := range []string{"RS256", "ES256", "none", "bogus"} {
		t.Run(alg, func(t *testing.T) {
			if _, err := NewJWTService(testSecret, alg, "skynetsvc", time.Minute); err == nil {
				t.Errorf("expected error for algorithm %q", alg)
			}
		})
	}
}

func TestJWTServiceImpl_GenerateValidate_Roundtrip(t *testing.T) {
	svc := newJWTServiceForTest(t, 30*time.Minute)

	token, err := svc.Generate(42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected a three-part JWT, got %q", token)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected subject 42, got %d", claims.UserID)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Errorf("expiry %d must be after issue %d", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestJWTServiceImpl_Generate_UniqueTokens(t *testing.T) {
	svc := newJWTServiceForTest(t, 30*time.Minute)

	first, err := svc.Generate(42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := svc.Generate(42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if first == second {
		t.Error("tokens for the same user must carry distinct ids")
	}
}

func TestJWTServiceImpl_Validate_Expired(t *testing.T) {
	svc := newJWTServiceForTest(t, -time.Minute)

	token, err := svc.Generate(42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTServiceImpl_Validate_WrongSecret(t *testing.T) {
	svc := newJWTServiceForTest(t, 30*time.Minute)

	other, err := NewJWTService("a-different-secret", "HS256", "skynetsvc", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewJWTService: %v", err)
	}

	token, err := other.Generate(42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTServiceImpl_Validate_Tampered(t *testing.T) {
	svc := newJWTServiceForTest(t, 30*time.Minute)

	token, err := svc.Generate(42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	if _, err := svc.Validate(tampered); err == nil {
		t.Error("tampered token must not validate")
	}
}

func TestJWTServiceImpl_Validate_Garbage(t *testing.T) {
	svc := newJWTServiceForTest(t, 30*time.Minute)

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := svc.Validate(token); err == nil {
			t.Errorf("expected error for %q", token)
		}
	}
}
