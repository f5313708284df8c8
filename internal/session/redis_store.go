package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"
)

// RedisStore keeps the session as a hash under one key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to addr and pings it.
func NewRedisStore(ctx context.Context, addr string, db int, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	zlog.Debug().Str("addr", addr).Int("db", db).Str("key", key).Msg("Session: Redis store connected")
	return NewRedisStoreWithClient(client, key), nil
}

// NewRedisStoreWithClient wraps an existing client. Close closes it.
func NewRedisStoreWithClient(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Load(ctx context.Context) (*Session, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis HGETALL %s: %w", r.key, err)
	}
	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}

	userID, err := strconv.Atoi(fields["user_id"])
	if err != nil {
		return nil, fmt.Errorf("corrupt session hash %s: user_id %q", r.key, fields["user_id"])
	}
	return &Session{
		Token:    fields["token"],
		UserID:   userID,
		Username: fields["username"],
		Email:    fields["email"],
	}, nil
}

func (r *RedisStore) Save(ctx context.Context, s Session) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key)
		pipe.HSet(ctx, r.key, map[string]interface{}{
			"token":    s.Token,
			"user_id":  s.UserID,
			"username": s.Username,
			"email":    s.Email,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis DEL %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
