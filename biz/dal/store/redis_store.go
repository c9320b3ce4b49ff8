package store

import (
	"context"
	"errors"
	"fmt"

	"userhub/be/biz/model/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the collection as one JSON document under a single key.
type RedisStore struct {
	rdb        redis.UniversalClient
	key        string
	maxRetries int
}

func NewRedisStore(rdb redis.UniversalClient, key string, maxRetries int) *RedisStore {
	if key == "" {
		key = "userhub:users"
	}
	return &RedisStore{rdb: rdb, key: key, maxRetries: retries(maxRetries)}
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.UserRecord, error) {
	return s.load(ctx, s.rdb)
}

func (s *RedisStore) Save(ctx context.Context, records []domain.UserRecord) error {
	data, err := encode(records)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %w", ErrWrite, s.key, err)
	}
	return nil
}

// Update watches the key and commits only if nobody wrote it in between.
func (s *RedisStore) Update(ctx context.Context, fn UpdateFunc) error {
	var fnErr error
	txf := func(tx *redis.Tx) error {
		records, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		next, err := fn(records)
		if err != nil {
			fnErr = err
			return err
		}
		data, err := encode(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < s.maxRetries; i++ {
		fnErr = nil
		err := s.rdb.Watch(ctx, txf, s.key)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, redis.TxFailedErr):
			continue
		case fnErr != nil:
			return fnErr
		case errors.Is(err, ErrRead), errors.Is(err, ErrCorrupt), errors.Is(err, ErrWrite):
			return err
		default:
			return fmt.Errorf("%w: update %s: %w", ErrWrite, s.key, err)
		}
	}
	return fmt.Errorf("%w: update %s: %w", ErrWrite, s.key, ErrVersionConflict)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *RedisStore) load(ctx context.Context, c getter) ([]domain.UserRecord, error) {
	data, err := c.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.UserRecord{}, nil
		}
		return nil, fmt.Errorf("%w: get %s: %w", ErrRead, s.key, err)
	}
	return decode(data)
}
