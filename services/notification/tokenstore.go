package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hillescape/utils"

	"github.com/go-redis/redis/v8"
)

// ErrCredentialNotFound is returned when no sender credential is stored under
// the requested account.
var ErrCredentialNotFound = errors.New("sender credential not found")

// SenderCredential is a stored SMTP sender identity. Operators connect an
// account once and the SMTP provider picks the credential up on every send.
type SenderCredential struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenStore is the key-value store the authenticated provider path consults.
// It is injected so tests can substitute an in-memory map and so credentials
// survive restarts instead of living in a process-global.
type TokenStore interface {
	Put(ctx context.Context, account string, cred SenderCredential) error
	Get(ctx context.Context, account string) (*SenderCredential, error)
	Delete(ctx context.Context, account string) error
}

type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore returns a TokenStore backed by the token Redis DB.
func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Put(ctx context.Context, account string, cred SenderCredential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("failed to marshal sender credential: %w", err)
	}
	if err := s.client.Set(ctx, utils.SenderTokenPrefix+account, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store sender credential: %w", err)
	}
	return nil
}

func (s *redisTokenStore) Get(ctx context.Context, account string) (*SenderCredential, error) {
	data, err := s.client.Get(ctx, utils.SenderTokenPrefix+account).Result()
	if err == redis.Nil {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load sender credential: %w", err)
	}
	var cred SenderCredential
	if err := json.Unmarshal([]byte(data), &cred); err != nil {
		return nil, fmt.Errorf("failed to parse sender credential: %w", err)
	}
	return &cred, nil
}

func (s *redisTokenStore) Delete(ctx context.Context, account string) error {
	return s.client.Del(ctx, utils.SenderTokenPrefix+account).Err()
}
