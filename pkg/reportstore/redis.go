package reportstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/vtree/pkg/report"
)

// Redis stores reports as JSON strings with an expiration.
type Redis struct {
	db     redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis wraps client. A zero ttl stores reports without expiration.
func NewRedis(client redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	return &Redis{db: client, prefix: prefix, ttl: ttl}
}

func (s *Redis) key(id string) string { return s.prefix + id }

func (s *Redis) Save(ctx context.Context, enc report.Encoded) (string, error) {
	data, err := marshal(enc)
	if err != nil {
		return "", err
	}
	id := newID()
	if err := s.db.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Redis) Load(ctx context.Context, id string) (report.Encoded, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	data, err := s.db.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return unmarshal(data)
}

func (s *Redis) Delete(ctx context.Context, id string) error {
	return s.db.Del(ctx, s.key(id)).Err()
}

// Conn returns the underlying client.
func (s *Redis) Conn() redis.UniversalClient { return s.db }
