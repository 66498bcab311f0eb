package highscore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"github.com/lixenwraith/berry-snake/core"
)

// DefaultRedisKey is the hash holding one field per tier
const DefaultRedisKey = "snakeHighScores"

// RedisStore keeps the table in a Redis hash {easy, medium, hard}
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
}

// NewRedisStore wraps client; the store takes ownership and closes it on Close
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	pool := goredis.NewPool(client)
	return &RedisStore{
		client: client,
		locker: redsync.New(pool),
		key:    key,
	}
}

// Load reads every tier field; missing or non-numeric fields read as 0
func (rs *RedisStore) Load(ctx context.Context) (Table, error) {
	fields, err := rs.client.HGetAll(ctx, rs.key).Result()
	if err != nil {
		return Table{}, fmt.Errorf("redis hgetall %s: %w", rs.key, err)
	}

	var t Table
	for _, d := range core.Difficulties {
		if v, ok := fields[d.Key()]; ok {
			if n, err := strconv.Atoi(v); err == nil {
				t.Set(d, n)
			}
		}
	}
	return t, nil
}

// Save overwrites every tier field
func (rs *RedisStore) Save(ctx context.Context, t Table) error {
	values := make(map[string]any, len(core.Difficulties))
	for _, d := range core.Difficulties {
		values[d.Key()] = t.Get(d)
	}
	if err := rs.client.HSet(ctx, rs.key, values).Err(); err != nil {
		return fmt.Errorf("redis hset %s: %w", rs.key, err)
	}
	return nil
}

// UpdateIfHigher raises one tier under a distributed lock so concurrent writers keep the maximum
func (rs *RedisStore) UpdateIfHigher(ctx context.Context, d core.Difficulty, score int) (int, bool, error) {
	mutex := rs.locker.NewMutex(rs.key + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return 0, false, fmt.Errorf("lock %s: %w", rs.key, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	field := d.Normalize().Key()
	current := 0
	v, err := rs.client.HGet(ctx, rs.key, field).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return 0, false, fmt.Errorf("redis hget %s.%s: %w", rs.key, field, err)
	default:
		if n, convErr := strconv.Atoi(v); convErr == nil {
			current = n
		}
	}

	if score <= current {
		return current, false, nil
	}
	if err := rs.client.HSet(ctx, rs.key, field, score).Err(); err != nil {
		return current, false, fmt.Errorf("redis hset %s.%s: %w", rs.key, field, err)
	}
	return score, true, nil
}

func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
