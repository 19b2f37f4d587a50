package reportstore

import (
	"context"
	"fmt"
)

// Open builds the backend named by cfg.Driver. The returned close function
// releases its connections.
func Open(ctx context.Context, cfg Config) (Store, func() error, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return NewMemory(max(cfg.Capacity, 1), cfg.TTL), func() error { return nil }, nil
	case DriverRedis:
		client, err := Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return NewRedis(client, cfg.KeyPrefix, cfg.TTL), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
