package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "valilik-yonetim/pkg/errors"
)

// SessionRepositoryInterface, oturum tarafı durumun (refresh token, başarısız
// giriş sayacı) saklandığı sözleşmedir.
type SessionRepositoryInterface interface {
	StoreRefreshToken(ctx context.Context, userID uint64, token string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, userID uint64) (string, error)
	DeleteRefreshToken(ctx context.Context, userID uint64) error
	IncrementLoginAttempts(ctx context.Context, eposta string, lockoutWindow time.Duration) (int64, error)
	GetLoginAttempts(ctx context.Context, eposta string) (int64, error)
	ResetLoginAttempts(ctx context.Context, eposta string) error
}

type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) SessionRepositoryInterface {
	return &RedisSessionRepository{client: client}
}

func refreshTokenKey(userID uint64) string {
	return fmt.Sprintf("oturum:refresh:%d", userID)
}

func loginAttemptsKey(eposta string) string {
	return fmt.Sprintf("oturum:deneme:%s", eposta)
}

func (r *RedisSessionRepository) StoreRefreshToken(ctx context.Context, userID uint64, token string, ttl time.Duration) error {
	return r.client.Set(ctx, refreshTokenKey(userID), token, ttl).Err()
}

func (r *RedisSessionRepository) GetRefreshToken(ctx context.Context, userID uint64) (string, error) {
	val, err := r.client.Get(ctx, refreshTokenKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrTokenNotFound
	}
	return val, err
}

func (r *RedisSessionRepository) DeleteRefreshToken(ctx context.Context, userID uint64) error {
	return r.client.Del(ctx, refreshTokenKey(userID)).Err()
}

func (r *RedisSessionRepository) IncrementLoginAttempts(ctx context.Context, eposta string, lockoutWindow time.Duration) (int64, error) {
	key := loginAttemptsKey(eposta)
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// Sayaç ilk artışta pencere süresi kadar yaşar.
	if count == 1 {
		if _, err := r.client.Expire(ctx, key, lockoutWindow).Result(); err != nil {
			return count, err
		}
	}
	return count, nil
}

func (r *RedisSessionRepository) GetLoginAttempts(ctx context.Context, eposta string) (int64, error) {
	count, err := r.client.Get(ctx, loginAttemptsKey(eposta)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return count, err
}

func (r *RedisSessionRepository) ResetLoginAttempts(ctx context.Context, eposta string) error {
	return r.client.Del(ctx, loginAttemptsKey(eposta)).Err()
}
