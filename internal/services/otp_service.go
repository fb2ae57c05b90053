package services

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// OTPServiceImpl implements domain.OTPService
type OTPServiceImpl struct {
	config OTPConfig
}

type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(config OTPConfig) domain.OTPService {
	if config.Length <= 0 {
		config.Length = 6
	}
	return &OTPServiceImpl{config: config}
}

// Generate implements domain.OTPService. Each digit is drawn
// independently from crypto/rand, so leading zeros are as likely as
// any other digit.
func (s *OTPServiceImpl) Generate() string {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand reads cannot fail on supported platforms
			panic(err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits)
}

// Expiry implements domain.OTPService
func (s *OTPServiceImpl) Expiry(now time.Time) time.Time {
	return now.UTC().Add(s.config.TTL)
}

// IsValid implements domain.OTPService. A code is usable strictly
// before its expiry instant, never at or after it.
func (s *OTPServiceImpl) IsValid(expiry, now time.Time) bool {
	return now.UTC().Before(expiry.UTC())
}
