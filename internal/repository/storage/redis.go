package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// The window waits for this connect at startup, so an unreachable server has to fail quickly.
const (
	dialTimeout = 2 * time.Second
	ioTimeout   = time.Second
)

// NewRedisStorage returns a client for outcome publishing, or an error when the server does not answer a ping.
func NewRedisStorage(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		MaxRetries:   1,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s is unreachable: %w", addr, err)
	}

	return client, nil
}
