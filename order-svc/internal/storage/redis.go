package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisSequence struct {
	Client *redis.Client
	Prefix string
}

func NewRedisSequence(client *redis.Client) *RedisSequence {
	return &RedisSequence{Client: client, Prefix: "dining:seq:"}
}

func (s *RedisSequence) Key(name string) string {
	return s.Prefix + name
}

func (s *RedisSequence) Next(ctx context.Context, name string) (int64, error) {
	return s.Client.Incr(ctx, s.Key(name)).Result()
}
