package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const conversationKeyPrefix = "intake:conversation:"

// RedisStore persists conversation records as JSON values with a TTL, so
// stale conversations age out without an explicit cleanup job.
type RedisStore struct {
	redis  *redis.Client
	tracer trace.Tracer
	ttl    time.Duration
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	if redisClient == nil {
		return nil
	}
	return &RedisStore{
		redis:  redisClient,
		tracer: otel.Tracer("intake.internal.intake.redis_store"),
		ttl:    ttl,
	}
}

func conversationKey(identity string) string {
	return conversationKeyPrefix + identity
}

func (s *RedisStore) GetOrCreate(ctx context.Context, identity string) (*Record, error) {
	if s == nil || s.redis == nil {
		return nil, errors.New("intake: redis store not configured")
	}
	if identity == "" {
		return nil, errors.New("intake: identity required")
	}

	ctx, span := s.tracer.Start(ctx, "intake.store.get_or_create")
	defer span.End()

	data, err := s.redis.Get(ctx, conversationKey(identity)).Bytes()
	if errors.Is(err, redis.Nil) {
		return NewRecord(identity), nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("intake: load record for %s: %w", identity, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("intake: decode record for %s: %w", identity, err)
	}
	return &rec, nil
}

func (s *RedisStore) Save(ctx context.Context, rec *Record) error {
	if s == nil || s.redis == nil {
		return errors.New("intake: redis store not configured")
	}
	if rec == nil || rec.Identity == "" {
		return errors.New("intake: record with identity required")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("intake: marshal record: %w", err)
	}

	ctx, span := s.tracer.Start(ctx, "intake.store.save")
	defer span.End()

	if err := s.redis.Set(ctx, conversationKey(rec.Identity), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("intake: save record for %s: %w", rec.Identity, err)
	}
	return nil
}
