package documents

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"slices"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-hud/internal/redis"
)

const scanBatchSize = 100

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// envelope is the stored value; documents have no TTL
type envelope struct {
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewRedis creates a Redis-backed document repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	doc := &Document{
		Key:       input.Key,
		Data:      slices.Clone(input.Data),
		UpdatedAt: r.clock.Now(),
	}

	payload, err := json.Marshal(envelope{Data: doc.Data, UpdatedAt: doc.UpdatedAt})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal document %s", input.Key)
	}

	if err := r.client.Set(ctx, input.Key, payload, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store document %s in Redis", input.Key)
	}

	return &SaveOutput{Document: doc}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	payload, err := r.client.Get(ctx, input.Key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, notFound(input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get document %s from Redis", input.Key)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal document %s", input.Key)
	}

	return &LoadOutput{Document: &Document{
		Key:       input.Key,
		Data:      []byte(env.Data),
		UpdatedAt: env.UpdatedAt,
	}}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	removed, err := r.client.Del(ctx, input.Key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete document %s from Redis", input.Key)
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, input.Prefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan documents with prefix %q", input.Prefix)
	}

	slices.Sort(keys)
	keys = slices.Compact(keys)
	if keys == nil {
		keys = []string{}
	}
	return &ListOutput{Keys: keys}, nil
}
