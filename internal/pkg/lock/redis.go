package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisLocker shares product locks between processes writing the same store.
// Waiters poll SET NX until the key frees up or their context ends.
type RedisLocker struct {
	Client       *redis.Client
	PollInterval time.Duration
}

func NewRedisLocker(ctx context.Context, cfg *RedisConfig) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisLocker{Client: client, PollInterval: 20 * time.Millisecond}, nil
}

func (r *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.New().String()
	poll := r.PollInterval
	if poll <= 0 {
		poll = 20 * time.Millisecond
	}

	for {
		ok, err := r.Client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(poll):
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			_ = releaseScript.Run(context.Background(), r.Client, []string{key}, token).Err()
		})
	}, nil
}

func (r *RedisLocker) Close() error {
	return r.Client.Close()
}
