package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisMock *Redis

// Redis pairs an in-process miniredis server with a client connected to it.
type Redis struct {
	Server  *miniredis.Miniredis
	Client  *redis.Client
	stopped bool
}

// NewRedis starts the shared miniredis server on first use.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisMock = &Redis{
			Server: server,
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})
	return redisMock
}

// Clear drops every cached key.
func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}

// Stop shuts the server down so clients see connection errors.
func (r *Redis) Stop() {
	if !r.stopped {
		r.Server.Close()
		r.stopped = true
	}
}

// Start brings a stopped server back on the same address.
func (r *Redis) Start() error {
	if !r.stopped {
		return nil
	}
	if err := r.Server.Restart(); err != nil {
		return err
	}
	r.stopped = false
	return nil
}
