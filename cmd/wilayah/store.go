package main

import (
	"context"
	"fmt"

	"github.com/aretw0/wilayah/internal/config"
	"github.com/aretw0/wilayah/pkg/adapters/file"
	"github.com/aretw0/wilayah/pkg/adapters/memory"
	"github.com/aretw0/wilayah/pkg/adapters/redis"
	"github.com/aretw0/wilayah/pkg/ports"
	"github.com/aretw0/wilayah/pkg/session"
)

// newSessions wires the session manager for the configured backend.
// The returned close function releases backend connections.
func newSessions(ctx context.Context, c config.SessionConfig, rc config.RedisConfig, engine ports.SelectionEngine) (*session.Manager, func() error, error) {
	opts := []session.Option{session.WithLogger(logger)}
	noop := func() error { return nil }

	var store ports.SelectionStore
	switch c.Store {
	case config.StoreMemory:
		store = memory.NewStore(memory.WithCapacity(c.Capacity))
	case config.StoreFile:
		store = file.NewStore(c.Dir)
	case config.StoreRedis:
		rs := redis.New(rc.Addr, rc.Password, rc.DB, redis.WithTTL(c.TTL))
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, noop, fmt.Errorf("redis unavailable at %s: %w", rc.Addr, err)
		}
		store = rs
		opts = append(opts, session.WithLocker(redis.NewLocker(rs.Client(), rs.Prefix())))
		logger.Info("using redis session store", "addr", rc.Addr)
		return session.NewManager(store, engine, opts...), rs.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown session store %q", c.Store)
	}
	logger.Debug("session store ready", "store", c.Store)
	return session.NewManager(store, engine, opts...), noop, nil
}
