package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint       `gorm:"primaryKey"`
	Username     string     `gorm:"uniqueIndex;size:64"`
	Email        string     `gorm:"uniqueIndex;size:255"`
	FullName     string     `gorm:"size:255"`
	PasswordHash string     `gorm:"column:hashed_password"`
	IsVerified   bool       `gorm:"index"`
	IsActive     bool       `gorm:"index"`
	OTPCode      *string    `gorm:"column:otp_code;size:8"`
	OTPExpiry    *time.Time `gorm:"column:otp_expiry"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByUsername implements domain.UserRepository
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// SetOTP implements domain.UserRepository
func (r *UserRepositoryImpl) SetOTP(ctx context.Context, userID uint, code string, expiry time.Time) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"otp_code":   code,
			"otp_expiry": expiry,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Activate implements domain.UserRepository. The otp_code guard makes
// the read-check-write cycle safe under concurrent verification
// attempts: only one request can clear a given code.
func (r *UserRepositoryImpl) Activate(ctx context.Context, userID uint, otpCode string) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ? AND otp_code = ?", userID, otpCode).
		Updates(map[string]interface{}{
			"is_verified": true,
			"is_active":   true,
			"otp_code":    nil,
			"otp_expiry":  nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOTPInvalid
	}
	return nil
}

// ResetPassword implements domain.UserRepository
func (r *UserRepositoryImpl) ResetPassword(ctx context.Context, userID uint, otpCode, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ? AND otp_code = ?", userID, otpCode).
		Updates(map[string]interface{}{
			"hashed_password": passwordHash,
			"otp_code":        nil,
			"otp_expiry":      nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOTPInvalid
	}
	return nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: user.PasswordHash,
		IsVerified:   user.IsVerified,
		IsActive:     user.IsActive,
		OTPCode:      user.OTPCode,
		OTPExpiry:    user.OTPExpiry,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Username:     dbUser.Username,
		Email:        dbUser.Email,
		FullName:     dbUser.FullName,
		PasswordHash: dbUser.PasswordHash,
		IsVerified:   dbUser.IsVerified,
		IsActive:     dbUser.IsActive,
		OTPCode:      dbUser.OTPCode,
		OTPExpiry:    dbUser.OTPExpiry,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
