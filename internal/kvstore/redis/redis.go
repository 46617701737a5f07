package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/workwhisperer/timekeeper-backend-go/internal/config"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
)

// Store persists blobs as plain Redis strings with no TTL: the tracker's
// data is the source of truth, not a cache.
type Store struct {
	client *goredis.Client
	prefix string
}

func NewStore(cfg config.RedisConfig) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		MinIdleConns: 2,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{client: client, prefix: cfg.KeyPrefix}, nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, kvstore.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(parts ...string) string {
	var sb strings.Builder
	sb.WriteString(s.prefix)
	for _, part := range parts {
		if part != "" {
			sb.WriteString(":")
			sb.WriteString(part)
		}
	}
	return sb.String()
}
