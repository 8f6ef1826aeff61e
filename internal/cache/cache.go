package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

// Store is a thin JSON cache over Redis, used to keep upstream GitHub
// responses warm between requests.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Get unmarshals the cached value for key into dest. The bool reports
// whether the key was present.
func (s *Store) Get(key string, dest interface{}) (bool, error) {
	raw, err := s.rdb.Get(ctx, s.prefixed(key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set marshals value and stores it under key for the given TTL.
func (s *Store) Set(key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.prefixed(key), raw, ttl).Err()
}

func (s *Store) prefixed(key string) string {
	return fmt.Sprintf("dc:cache:%s", key)
}
