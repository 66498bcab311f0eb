package highscore

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Options selects and configures a Store backend
type Options struct {
	Backend string

	FilePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}

// Open connects the configured backend and verifies it is reachable
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendFile:
		if opts.FilePath == "" {
			return nil, fmt.Errorf("file backend: empty path")
		}
		return NewFileStore(opts.FilePath), nil

	case BackendMemory:
		return NewMemoryStore(Table{}), nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis ping %s: %w", opts.RedisAddr, err)
		}
		return NewRedisStore(client, opts.RedisKey), nil

	case BackendMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("mongo ping: %w", err)
		}
		return NewMongoStore(client, opts.MongoDatabase, opts.MongoCollection), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
