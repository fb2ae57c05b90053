package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/mocks"
)

func setupAuthRouter(authSvc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandlers(authSvc)

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/verify-otp", h.VerifyOTP)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/forget-password", h.ForgetPassword)
	r.POST("/auth/reset-password", h.ResetPassword)
	r.POST("/auth/resend-otp", h.ResendOTP)
	r.POST("/auth/logout", func(c *gin.Context) {
		c.Set("user", &domain.User{ID: 1, Username: "alice", Email: "a@x.com", IsVerified: true, IsActive: true})
	}, h.Logout)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAuthHandlers_Signup(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMock      func(*mocks.MockAuthService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful signup",
			body: gin.H{"username": "alice", "email": "a@x.com", "full_name": "Alice A", "password": "password123"},
			setupMock: func(m *mocks.MockAuthService) {
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing fields",
			body:           gin.H{"email": "a@x.com"},
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email",
			body:           gin.H{"username": "alice", "email": "not-an-email", "full_name": "Alice A", "password": "password123"},
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           gin.H{"username": "alice", "email": "a@x.com", "full_name": "Alice A", "password": "short"},
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate account",
			body: gin.H{"username": "alice", "email": "a@x.com", "full_name": "Alice A", "password": "password123"},
			setupMock: func(m *mocks.MockAuthService) {
				m.SignupFunc = func(ctx context.Context, username, email, fullName, password string) (*domain.User, error) {
					return nil, domain.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email or username already registered",
		},
		{
			name: "internal failure",
			body: gin.H{"username": "alice", "email": "a@x.com", "full_name": "Alice A", "password": "password123"},
			setupMock: func(m *mocks.MockAuthService) {
				m.SignupFunc = func(ctx context.Context, username, email, fullName, password string) (*domain.User, error) {
					return nil, assert.AnError
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMock(authSvc)
			r := setupAuthRouter(authSvc)

			w := postJSON(t, r, "/auth/signup", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody(t, w)["error"])
			}
			if tt.expectedStatus == http.StatusCreated {
				body := decodeBody(t, w)
				assert.Equal(t, "a@x.com", body["email"])
				assert.Contains(t, body["message"], "OTP")
			}
		})
	}
}

func TestAuthHandlers_VerifyOTP(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		serviceError   error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "successful verification",
			body:           gin.H{"email": "a@x.com", "otp": "654321"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-numeric otp rejected by binding",
			body:           gin.H{"email": "a@x.com", "otp": "abc123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short otp rejected by binding",
			body:           gin.H{"email": "a@x.com", "otp": "123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown user",
			body:           gin.H{"email": "a@x.com", "otp": "654321"},
			serviceError:   domain.ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "User not found",
		},
		{
			name:           "already verified",
			body:           gin.H{"email": "a@x.com", "otp": "654321"},
			serviceError:   domain.ErrUserAlreadyVerified,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "User already verified",
		},
		{
			name:           "no otp pending",
			body:           gin.H{"email": "a@x.com", "otp": "654321"},
			serviceError:   domain.ErrOTPNotFound,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "No OTP found for this user",
		},
		{
			name:           "expired otp",
			body:           gin.H{"email": "a@x.com", "otp": "654321"},
			serviceError:   domain.ErrOTPExpired,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "OTP has expired. Please request a new one.",
		},
		{
			name:           "wrong otp",
			body:           gin.H{"email": "a@x.com", "otp": "654321"},
			serviceError:   domain.ErrOTPInvalid,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid OTP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.serviceError != nil {
				authSvc.VerifyOTPFunc = func(ctx context.Context, email, code string) (*domain.User, error) {
					return nil, tt.serviceError
				}
			} else {
				authSvc.VerifyOTPFunc = func(ctx context.Context, email, code string) (*domain.User, error) {
					return &domain.User{ID: 1, Username: "alice", Email: email, FullName: "Alice A", IsVerified: true, IsActive: true}, nil
				}
			}
			r := setupAuthRouter(authSvc)

			w := postJSON(t, r, "/auth/verify-otp", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody(t, w)["error"])
			}
			if tt.expectedStatus == http.StatusOK {
				body := decodeBody(t, w)
				user, ok := body["user"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "alice", user["username"])
				assert.Equal(t, "Alice A", user["full_name"])
			}
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name           string
		serviceError   error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "successful login",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad credentials",
			serviceError:   domain.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid email or password",
		},
		{
			name:           "unverified account",
			serviceError:   domain.ErrUserNotVerified,
			expectedStatus: http.StatusForbidden,
			expectedError:  "Account not verified. Please verify your email first.",
		},
		{
			name:           "deactivated account",
			serviceError:   domain.ErrUserDeactivated,
			expectedStatus: http.StatusForbidden,
			expectedError:  "Account is deactivated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.serviceError != nil {
				authSvc.LoginFunc = func(ctx context.Context, email, password string) (string, error) {
					return "", tt.serviceError
				}
			} else {
				authSvc.LoginFunc = func(ctx context.Context, email, password string) (string, error) {
					return "signed-token", nil
				}
			}
			r := setupAuthRouter(authSvc)

			w := postJSON(t, r, "/auth/login", gin.H{"email": "a@x.com", "password": "password123"})

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				assert.NotContains(t, body, "access_token")
			} else {
				assert.Equal(t, "signed-token", body["access_token"])
				assert.Equal(t, "bearer", body["token_type"])
			}
		})
	}
}

func TestAuthHandlers_ForgetPassword(t *testing.T) {
	t.Run("issues an OTP", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		r := setupAuthRouter(authSvc)

		w := postJSON(t, r, "/auth/forget-password", gin.H{"email": "a@x.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "a@x.com", decodeBody(t, w)["email"])
	})

	t.Run("unknown email", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.ForgotPasswordFunc = func(ctx context.Context, email string) error {
			return domain.ErrUserNotFound
		}
		r := setupAuthRouter(authSvc)

		w := postJSON(t, r, "/auth/forget-password", gin.H{"email": "a@x.com"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No account found with this email", decodeBody(t, w)["error"])
	})
}

func TestAuthHandlers_ResetPassword(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "successful reset",
			body:           gin.H{"email": "a@x.com", "otp": "654321", "new_password": "newpassword1"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "short new password rejected by binding",
			body:           gin.H{"email": "a@x.com", "otp": "654321", "new_password": "short"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown user",
			body:           gin.H{"email": "a@x.com", "otp": "654321", "new_password": "newpassword1"},
			serviceError:   domain.ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrong otp",
			body:           gin.H{"email": "a@x.com", "otp": "654321", "new_password": "newpassword1"},
			serviceError:   domain.ErrOTPInvalid,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "expired otp",
			body:           gin.H{"email": "a@x.com", "otp": "654321", "new_password": "newpassword1"},
			serviceError:   domain.ErrOTPExpired,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.serviceError != nil {
				authSvc.ResetPasswordFunc = func(ctx context.Context, email, code, newPassword string) error {
					return tt.serviceError
				}
			}
			r := setupAuthRouter(authSvc)

			w := postJSON(t, r, "/auth/reset-password", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandlers_ResendOTP(t *testing.T) {
	authSvc := mocks.NewMockAuthService()

	resent := ""
	authSvc.ResendOTPFunc = func(ctx context.Context, email string) error {
		resent = email
		return nil
	}
	r := setupAuthRouter(authSvc)

	w := postJSON(t, r, "/auth/resend-otp", gin.H{"email": "a@x.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", resent)
}

func TestAuthHandlers_Logout(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	r := setupAuthRouter(authSvc)

	w := postJSON(t, r, "/auth/logout", gin.H{})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
}
