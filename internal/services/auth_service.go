package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// AuthServiceImpl implements domain.AuthService. It owns the account
// lifecycle: signup, OTP verification, login and the password-reset
// flow. Both the signup-verification and password-reset flows share the
// OTP fields on the user row, so issuing a new code for either purpose
// simply overwrites the previous one.
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	emailSvc    domain.EmailService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	emailSvc domain.EmailService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		emailSvc:    emailSvc,
	}
}

// Signup implements domain.AuthService. The new account starts
// unverified and inactive with a pending OTP; the OTP email goes out
// only after the row is committed.
func (s *AuthServiceImpl) Signup(ctx context.Context, username, email, fullName, password string) (*domain.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code := s.otpSvc.Generate()
	expiry := s.otpSvc.Expiry(time.Now())

	user := &domain.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hashedPassword,
		IsVerified:   false,
		IsActive:     false,
		OTPCode:      &code,
		OTPExpiry:    &expiry,
	}

	// The unique indexes catch a concurrent signup that slipped past
	// the lookups above.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.deliverOTP(user, code)

	return user, nil
}

// VerifyOTP implements domain.AuthService. Checks run in a fixed order
// so the reported error is deterministic: unknown account, already
// verified, no pending code, expired code, wrong code.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, code string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.IsVerified {
		return nil, domain.ErrUserAlreadyVerified
	}
	if !user.HasPendingOTP() {
		return nil, domain.ErrOTPNotFound
	}
	if !s.otpSvc.IsValid(*user.OTPExpiry, time.Now()) {
		return nil, domain.ErrOTPExpired
	}
	if *user.OTPCode != code {
		return nil, domain.ErrOTPInvalid
	}

	// Guarded update: if a concurrent request consumed the code after
	// the read above, this reports ErrOTPInvalid instead of silently
	// double-consuming.
	if err := s.userRepo.Activate(ctx, user.ID, code); err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.IsActive = true
	user.OTPCode = nil
	user.OTPExpiry = nil

	if err := s.emailSvc.SendWelcome(user.Email, user.FullName); err != nil {
		log.Printf("EMAIL_DELIVERY_FAILED: kind=welcome user_id=%d email=%s error=%v", user.ID, user.Email, err)
	}

	return user, nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// produce the same error so callers cannot probe which one failed.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return "", domain.ErrUserNotVerified
	}
	if !user.IsActive {
		return "", domain.ErrUserDeactivated
	}

	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, nil
}

// ForgotPassword implements domain.AuthService. A fresh OTP replaces
// any pending one regardless of the account's verification state.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	code := s.otpSvc.Generate()
	expiry := s.otpSvc.Expiry(time.Now())

	if err := s.userRepo.SetOTP(ctx, user.ID, code, expiry); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	s.deliverOTP(user, code)

	return nil
}

// ResetPassword implements domain.AuthService. OTP checks follow the
// same order as VerifyOTP; verification and active flags are left
// untouched.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !user.HasPendingOTP() {
		return domain.ErrOTPNotFound
	}
	if !s.otpSvc.IsValid(*user.OTPExpiry, time.Now()) {
		return domain.ErrOTPExpired
	}
	if *user.OTPCode != code {
		return domain.ErrOTPInvalid
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.ResetPassword(ctx, user.ID, code, hashedPassword)
}

// ResendOTP implements domain.AuthService. It is the same operation as
// ForgotPassword with a second entry point: regenerate and redeliver a
// code without looking at verification state.
func (s *AuthServiceImpl) ResendOTP(ctx context.Context, email string) error {
	return s.ForgotPassword(ctx, email)
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// deliverOTP sends the code after the state mutation is committed.
// Delivery failure degrades to a log line; resend-otp is the recovery
// path for a user who never received the email.
func (s *AuthServiceImpl) deliverOTP(user *domain.User, code string) {
	if err := s.emailSvc.SendOTP(user.Email, user.FullName, code); err != nil {
		log.Printf("EMAIL_DELIVERY_FAILED: kind=otp user_id=%d email=%s error=%v", user.ID, user.Email, err)
	}
}
