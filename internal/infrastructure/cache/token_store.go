package cache

import (
	"context"
	"fmt"
	"time"

	domainRepo "health-records-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type redisTokenStore struct {
	client *redis.Client
}

// NewTokenStore returns a TokenStore backed by Redis. Keys carry the token
// TTL so revocation state never outlives the token itself.
func NewTokenStore(client *redis.Client) domainRepo.TokenStore {
	return &redisTokenStore{client: client}
}

func tokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("auth_token:%s:%s", userID.String(), tokenID)
}

func (s *redisTokenStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, tokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, tokenKey(userID, tokenID)).Err()
}

func (s *redisTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("auth_token:%s:*", userID.String())
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return nil
}
