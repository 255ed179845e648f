package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/solilop/solilop-backend/internal/domain"
)

// SessionRepo keeps sessions as JSON values that expire with their TTL.
// Keys are the prefix followed by the token hash, never the raw token.
type SessionRepo struct {
	rdb    *goredis.Client
	prefix string
}

func NewSessionRepo(rdb *goredis.Client, keyPrefix string) *SessionRepo {
	return &SessionRepo{rdb: rdb, prefix: keyPrefix}
}

func (s *SessionRepo) key(tokenHash string) string {
	return s.prefix + "session:" + tokenHash
}

// Create stores the session for ttl, replacing any session under the same hash.
func (s *SessionRepo) Create(ctx context.Context, tokenHash string, sess domain.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(tokenHash), data, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Get returns the live session for tokenHash, or domain.ErrNotFound once it
// expired or was deleted.
func (s *SessionRepo) Get(ctx context.Context, tokenHash string) (*domain.Session, error) {
	data, err := s.rdb.Get(ctx, s.key(tokenHash)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (s *SessionRepo) Delete(ctx context.Context, tokenHash string) error {
	if err := s.rdb.Del(ctx, s.key(tokenHash)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
