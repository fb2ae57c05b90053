package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/mocks"
)

func setupProtectedRouter(tokenSvc domain.TokenService, userRepo domain.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokenSvc, userRepo), func(c *gin.Context) {
		v, _ := c.Get("user")
		user := v.(*domain.User)
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
	})
	return r
}

func requestWithHeader(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	verifiedUser := &domain.User{ID: 1, Username: "alice", Email: "a@x.com", IsVerified: true, IsActive: true}

	tests := []struct {
		name           string
		authorization  string
		setupMocks     func(*mocks.MockTokenService, *mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name:          "missing header",
			authorization: "",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authorization:  "token abc",
			setupMocks:     func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing scheme",
			authorization:  "abc",
			setupMocks:     func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "expired token",
			authorization: "Bearer expired",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "invalid token",
			authorization: "Bearer garbage",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenInvalid
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "token for a deleted account",
			authorization: "Bearer valid",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "unverified account",
			authorization: "Bearer valid",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return &domain.User{ID: 1, Username: "alice", IsVerified: false}, nil
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:          "deactivated account",
			authorization: "Bearer valid",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return &domain.User{ID: 1, Username: "alice", IsVerified: true, IsActive: false}, nil
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:          "valid token for an active account",
			authorization: "Bearer valid",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return verifiedUser, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(tokenSvc, userRepo)
			r := setupProtectedRouter(tokenSvc, userRepo)

			w := requestWithHeader(r, tt.authorization)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthMiddleware_LooksUpTokenSubject(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	userRepo := mocks.NewMockUserRepository()

	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: 42}, nil
	}

	var lookedUp uint
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		lookedUp = id
		return &domain.User{ID: id, Username: "alice", IsVerified: true, IsActive: true}, nil
	}

	r := setupProtectedRouter(tokenSvc, userRepo)
	w := requestWithHeader(r, "Bearer valid")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), lookedUp)
}

func TestAuthMW_WithJWT(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, Username: "alice", IsVerified: true, IsActive: true}, nil
	}

	mw := NewAuthMW(tokenSvc, userRepo)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw.WithJWT(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := requestWithHeader(r, "Bearer valid")
	assert.Equal(t, http.StatusOK, w.Code)

	w = requestWithHeader(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
