package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "workjunction-backend/internal/errors"
)

// OTPStoreInterface defines the one-time code store used for email verification
type OTPStoreInterface interface {
	Issue(ctx context.Context, email, purpose string) (string, error)
	Verify(ctx context.Context, email, purpose, code string) error
}

// OTPStore keeps one-time codes in Redis with a TTL
type OTPStore struct {
	client *redis.Client
	length int
	ttl    time.Duration
}

// NewOTPStore creates a new OTP store
func NewOTPStore(client *redis.Client, length int, ttl time.Duration) *OTPStore {
	if length <= 0 {
		length = 6
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &OTPStore{
		client: client,
		length: length,
		ttl:    ttl,
	}
}

func otpKey(email, purpose string) string {
	return fmt.Sprintf("otp_%s_%s", email, purpose)
}

// Issue generates a fresh numeric code for an email and purpose, replacing any
// previous code, and stores it with the configured TTL
func (s *OTPStore) Issue(ctx context.Context, email, purpose string) (string, error) {
	code, err := s.generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}

	if err := s.client.Set(ctx, otpKey(email, purpose), code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store otp: %w", err)
	}
	return code, nil
}

// Verify checks a submitted code against the stored one and consumes it on
// success. Expired, missing and mismatched codes all fail the same way.
func (s *OTPStore) Verify(ctx context.Context, email, purpose, code string) error {
	key := otpKey(email, purpose)

	stored, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return apperrors.ErrInvalidOTP
	}
	if err != nil {
		return fmt.Errorf("failed to read otp: %w", err)
	}

	if stored != code {
		return apperrors.ErrInvalidOTP
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to consume otp: %w", err)
	}
	return nil
}

func (s *OTPStore) generateCode() (string, error) {
	digits := make([]byte, s.length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
