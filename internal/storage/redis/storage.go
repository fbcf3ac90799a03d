package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MCBE-Utilities/BeRAPI/internal/dependencies/clock"
	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	"github.com/MCBE-Utilities/BeRAPI/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// It lets several processes share one set of credentials.
type Storage struct {
	client *redis.Client
	clock  clock.Clock
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config, clk clock.Clock) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, clk, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, clk clock.Clock, cfg Config) *Storage {
	return &Storage{
		client: client,
		clock:  clk,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveIdentity(ctx context.Context, party string, identity model.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	// Expire together with the credential; fall back to the configured TTL
	ttl := s.cfg.IdentityTTL
	if !identity.ExpiresAt.IsZero() {
		ttl = clock.Until(s.clock, identity.ExpiresAt)
		if ttl == 0 {
			return s.client.Del(ctx, identityKey(party)).Err()
		}
	}

	return s.client.Set(ctx, identityKey(party), data, ttl).Err()
}

func (s *Storage) GetIdentity(ctx context.Context, party string) (model.Identity, error) {
	data, err := s.client.Get(ctx, identityKey(party)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Identity{}, model.ErrIdentityNotFound
		}
		return model.Identity{}, err
	}

	var identity model.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return model.Identity{}, err
	}
	return identity, nil
}

func (s *Storage) DeleteIdentity(ctx context.Context, party string) error {
	return s.client.Del(ctx, identityKey(party)).Err()
}
