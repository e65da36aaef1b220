package tables

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/pkg/clock"
	redisclient "github.com/osrsdps/dps-console/internal/redis"
)

const (
	tableKeyPrefix = "tables:"

	fieldData     = "data"
	fieldCachedAt = "cached_at"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis table cache
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed table cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func tableKey(kind, location string) (string, error) {
	if kind == "" {
		return "", errors.InvalidArgument("kind cannot be empty")
	}
	if location == "" {
		return "", errors.InvalidArgument("location cannot be empty")
	}
	return tableKeyPrefix + kind + ":" + location, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	key, err := tableKey(input.Kind, input.Location)
	if err != nil {
		return nil, err
	}

	values, err := r.client.HMGet(ctx, key, fieldData, fieldCachedAt).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("table %s not cached", input.Kind)
		}
		return nil, errors.Wrapf(err, "failed to read cached table %s", input.Kind)
	}

	data, ok := values[0].(string)
	if !ok {
		return nil, errors.NotFoundf("table %s not cached", input.Kind)
	}

	out := &GetOutput{Data: []byte(data)}
	if ts, ok := values[1].(string); ok {
		if cachedAt, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			out.CachedAt = cachedAt
		}
	}
	return out, nil
}

func (r *redisRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	key, err := tableKey(input.Kind, input.Location)
	if err != nil {
		return nil, err
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument("ttl cannot be negative")
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key,
		fieldData, input.Data,
		fieldCachedAt, r.clock.Now().UTC().Format(time.RFC3339Nano),
	)
	if input.TTL > 0 {
		pipe.Expire(ctx, key, input.TTL)
	} else {
		pipe.Persist(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to cache table %s", input.Kind)
	}

	return &PutOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	key, err := tableKey(input.Kind, input.Location)
	if err != nil {
		return nil, err
	}

	n, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete cached table %s", input.Kind)
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

func (r *redisRepository) Purge(ctx context.Context, input *PurgeInput) (*PurgeOutput, error) {
	if input == nil {
		input = &PurgeInput{}
	}

	pattern := tableKeyPrefix + "*"
	if input.Kind != "" {
		pattern = tableKeyPrefix + input.Kind + ":*"
	}

	out := &PurgeOutput{}
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.Checked++

		if input.CorruptOnly {
			data, err := r.client.HGet(ctx, key, fieldData).Result()
			if err != nil && err != redis.Nil {
				return nil, errors.Wrapf(err, "failed to read %s", key)
			}
			if err == nil && json.Valid([]byte(data)) {
				continue
			}
		}

		if err := r.client.Del(ctx, key).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to delete %s", key)
		}
		out.Removed = append(out.Removed, key)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan cached tables")
	}

	return out, nil
}
