package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "doc:"

// RedisStore keeps every document as a JSON string under
// "doc:<collection>:<id>". Collections holding sub-collection paths embed
// "/" in the collection segment, so per-collection key patterns never
// overlap.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects and verifies the connection with a short ping.
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{rdb: rdb}, nil
}

func docKey(collection, id string) string {
	return keyPrefix + collection + ":" + id
}

func (s *RedisStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, docKey(collection, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return data, nil
}

func (s *RedisStore) Put(ctx context.Context, collection, id string, data []byte) error {
	if err := s.rdb.Set(ctx, docKey(collection, id), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.rdb.Del(ctx, docKey(collection, id)).Err(); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func (s *RedisStore) Query(ctx context.Context, collection string, filter *Filter) ([]Document, error) {
	pattern := keyPrefix + collection + ":*"
	keys, err := s.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %q: %w", collection, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %q: %w", collection, err)
	}

	prefix := keyPrefix + collection + ":"
	var out []Document
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// key expired between KEYS and MGET
			continue
		}
		data := []byte(raw)
		if !matches(data, filter) {
			continue
		}
		out = append(out, Document{
			ID:   strings.TrimPrefix(keys[i], prefix),
			Data: data,
		})
	}
	return out, nil
}

// Ping checks connectivity, for health probes.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
