package highscore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/berry-snake/core"
)

// Backend tests need live servers:
//   BERRY_SNAKE_TEST_REDIS=localhost:6379
//   BERRY_SNAKE_TEST_MONGO=mongodb://localhost:27017

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func exerciseStore(t *testing.T, ctx context.Context, s Store) {
	t.Helper()

	tbl, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Table{}, tbl, "fresh namespace loads zero")

	want := Table{Easy: 1, Medium: 5, Hard: 9}
	require.NoError(t, s.Save(ctx, want))

	tbl, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, tbl)

	u, ok := s.(Updater)
	require.True(t, ok)

	best, updated, err := u.UpdateIfHigher(ctx, core.DifficultyMedium, 7)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, 7, best)

	best, updated, err = u.UpdateIfHigher(ctx, core.DifficultyMedium, 3)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, 7, best)

	tbl, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, tbl.Medium)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("BERRY_SNAKE_TEST_REDIS")
	if addr == "" {
		t.Skip("BERRY_SNAKE_TEST_REDIS not set")
	}
	ctx := testContext(t)

	key := fmt.Sprintf("berry-snake-test:%s", uuid.NewString())
	s, err := Open(ctx, Options{Backend: BackendRedis, RedisAddr: addr, RedisKey: key})
	require.NoError(t, err)
	t.Cleanup(func() {
		rs := s.(*RedisStore)
		rs.client.Del(context.Background(), key)
		_ = rs.Close()
	})

	exerciseStore(t, ctx, s)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("BERRY_SNAKE_TEST_MONGO")
	if uri == "" {
		t.Skip("BERRY_SNAKE_TEST_MONGO not set")
	}
	ctx := testContext(t)

	coll := "scores_" + uuid.NewString()
	s, err := Open(ctx, Options{
		Backend:         BackendMongo,
		MongoURI:        uri,
		MongoDatabase:   "berry_snake_test",
		MongoCollection: coll,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		ms := s.(*MongoStore)
		_ = ms.coll.Drop(context.Background())
		_ = ms.Close()
	})

	exerciseStore(t, ctx, s)
}
