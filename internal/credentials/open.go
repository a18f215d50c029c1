package credentials

import (
	"context"
	"fmt"

	"ms-booking-client/internal/config"
)

// Open builds the backend selected by cfg.Credentials.Backend. The returned
// close function releases any connection the backend holds.
func Open(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	noop := func() error { return nil }
	key := cfg.Credentials.Key

	switch cfg.Credentials.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), noop, nil
	case config.BackendFile, "":
		return NewFileStore(cfg.Credentials.FilePath, key), noop, nil
	case config.BackendRedis:
		client, err := DialRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(client, key), client.Close, nil
	case config.BackendSQLite:
		db, err := OpenSQLite(ctx, cfg.Credentials.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLiteStore(db, key), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown credential backend %q", cfg.Credentials.Backend)
	}
}
