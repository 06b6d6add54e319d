package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPStore keeps bcrypt hashes of one-time codes keyed by phone number, with
// the TTL enforced by redis rather than application logic.
type OTPStore interface {
	Save(ctx context.Context, phone, hash string, ttl time.Duration) error
	Get(ctx context.Context, phone string) (string, error)
	Delete(ctx context.Context, phone string) error
}

type redisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) OTPStore {
	return &redisOTPStore{client: client}
}

func otpKey(phone string) string {
	return "otp:" + phone
}

func (s *redisOTPStore) Save(ctx context.Context, phone, hash string, ttl time.Duration) error {
	if err := s.client.Set(ctx, otpKey(phone), hash, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	return nil
}

func (s *redisOTPStore) Get(ctx context.Context, phone string) (string, error) {
	hash, err := s.client.Get(ctx, otpKey(phone)).Result()
	if err != nil {
		return "", fmt.Errorf("otp not found: %w", err)
	}
	return hash, nil
}

func (s *redisOTPStore) Delete(ctx context.Context, phone string) error {
	return s.client.Del(ctx, otpKey(phone)).Err()
}
