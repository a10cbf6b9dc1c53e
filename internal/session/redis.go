package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/propdesk/propdesk/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultKeyPrefix = "propdesk:session"

// RedisStore keeps the session in Redis, for deployments where several
// console gateway instances share one operator session. Same two-key layout
// as the file store.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL, keyPrefix string, logger *zap.Logger) (*RedisStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisStore{client: client, prefix: keyPrefix, logger: logger}, nil
}

// Client exposes the underlying Redis client so it can be reused for other
// concerns (rate-limit store, health checks).
func (s *RedisStore) Client() *redis.Client { return s.client }

// Close releases the Redis connection.
func (s *RedisStore) Close() error { return s.client.Close() }

func (s *RedisStore) tokenKey() string    { return s.prefix + ":token" }
func (s *RedisStore) userInfoKey() string { return s.prefix + ":userinfo" }

// Save writes both keys. Token lifetime is governed by the exp claim, not a
// Redis TTL, so lazy eviction behaves identically across backends.
func (s *RedisStore) Save(ctx context.Context, token string, info *models.UserInfo) error {
	if err := s.client.Set(ctx, s.tokenKey(), token, 0).Err(); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to serialize user info: %w", err)
	}
	if err := s.client.Set(ctx, s.userInfoKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write user info: %w", err)
	}
	return nil
}

// Clear removes both keys.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.tokenKey(), s.userInfoKey()).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Read loads the session, treating an unparsable user-info value as absent.
func (s *RedisStore) Read(ctx context.Context) (string, *models.UserInfo, error) {
	tok, err := s.client.Get(ctx, s.tokenKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to read token: %w", err)
	}

	data, err := s.client.Get(ctx, s.userInfoKey()).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("failed_to_read_user_info", zap.Error(err))
		}
		return tok, nil, nil
	}

	var info models.UserInfo
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		s.logger.Warn("corrupt_user_info_ignored", zap.Error(err))
		return tok, nil, nil
	}
	return tok, &info, nil
}
