package assistantinfra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/orgstruct/bff/pkg/assistant"
	"github.com/orgstruct/bff/pkg/errx"
	"github.com/orgstruct/bff/pkg/kernel"
)

const memoryListKey = "assistant:memory"

// RedisMemoryRepository keeps the conversation log in a Redis list,
// newest-first (LPUSH). An alternative backend for deployments without
// Postgres; selected through ASSISTANT_MEMORY_BACKEND.
type RedisMemoryRepository struct {
	client  *redis.Client
	maxSize int64
}

// NewRedisMemoryRepository creates the repository; maxSize bounds the
// retained history (0 means unbounded).
func NewRedisMemoryRepository(client *redis.Client, maxSize int64) assistant.MemoryRepository {
	return &RedisMemoryRepository{client: client, maxSize: maxSize}
}

func (r *RedisMemoryRepository) Append(ctx context.Context, role assistant.Role, text string) error {
	turn := assistant.Turn{
		ID:        kernel.NewDocumentID(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(turn)
	if err != nil {
		return errx.Wrap(err, "failed to encode memory turn", errx.TypeInternal)
	}

	if err := r.client.LPush(ctx, memoryListKey, payload).Err(); err != nil {
		return errx.Wrap(err, "failed to append memory turn", errx.TypeInternal)
	}

	if r.maxSize > 0 {
		if err := r.client.LTrim(ctx, memoryListKey, 0, r.maxSize-1).Err(); err != nil {
			return errx.Wrap(err, "failed to trim memory list", errx.TypeInternal)
		}
	}

	return nil
}

func (r *RedisMemoryRepository) Recent(ctx context.Context, limit int) ([]assistant.Turn, error) {
	entries, err := r.client.LRange(ctx, memoryListKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, errx.Wrap(err, "failed to read recent memory", errx.TypeInternal)
	}

	turns := make([]assistant.Turn, 0, len(entries))
	for _, e := range entries {
		var t assistant.Turn
		if err := json.Unmarshal([]byte(e), &t); err != nil {
			return nil, errx.Wrap(err, "failed to decode memory turn", errx.TypeInternal)
		}
		turns = append(turns, t)
	}

	// LPUSH order is newest-first; restore chronological order.
	reverseTurns(turns)
	return turns, nil
}
