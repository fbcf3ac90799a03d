package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/MCBE-Utilities/BeRAPI/internal/dependencies/clock"
	"github.com/MCBE-Utilities/BeRAPI/internal/endpoints"
	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	"github.com/MCBE-Utilities/BeRAPI/internal/requests"
	"github.com/MCBE-Utilities/BeRAPI/internal/services/auth"
	"github.com/MCBE-Utilities/BeRAPI/internal/services/realm"
	"github.com/MCBE-Utilities/BeRAPI/internal/storage"
	"github.com/MCBE-Utilities/BeRAPI/internal/storage/memory"
	redisstorage "github.com/MCBE-Utilities/BeRAPI/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultTimeout is the HTTP timeout used when no client is supplied
const DefaultTimeout = 30 * time.Second

// Client contains all wired SDK components
type Client struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	Auth     *auth.Service
	Requests *requests.Manager
	Realms   *realm.Manager
}

// Config holds configuration for the client factory
type Config struct {
	// Logger is the SDK logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the credential store ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// RealmsURL and XboxURL override the API base URLs (optional)
	RealmsURL string
	XboxURL   string
	// HTTPClient is used for every request (optional)
	// If nil, a client with DefaultTimeout is used
	HTTPClient *http.Client
	// Identity is stored for the realms party when set
	Identity model.Identity
	// XboxIdentity is stored for the xbox party when set.
	// Without it, profile lookups use Identity.
	XboxIdentity model.Identity
}

// New creates a new Client with all dependencies wired
func New(ctx context.Context, cfg Config) (*Client, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig, clk)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	client := newWithDependencies(store, clk, endpoints.New(cfg.RealmsURL, cfg.XboxURL), httpClient, logger)

	if err := client.seed(ctx, cfg.Identity, cfg.XboxIdentity); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// newWithDependencies creates a Client with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, eps endpoints.Endpoints, httpClient *http.Client, logger *slog.Logger) *Client {
	authService := auth.New(store, clk, logger)
	requestManager := requests.NewManager(authService, httpClient, logger)
	realmManager := realm.NewManager(requestManager, eps, clk, logger)

	return &Client{
		Storage:  store,
		Clock:    clk,
		Auth:     authService,
		Requests: requestManager,
		Realms:   realmManager,
	}
}

func (c *Client) seed(ctx context.Context, realms, xbox model.Identity) error {
	if !realms.IsZero() {
		if err := c.Auth.SetIdentity(ctx, auth.PartyRealms, realms); err != nil {
			return fmt.Errorf("realms identity: %w", err)
		}
	}
	if !xbox.IsZero() {
		if err := c.Auth.SetIdentity(ctx, auth.PartyXbox, xbox); err != nil {
			return fmt.Errorf("xbox identity: %w", err)
		}
	}
	return nil
}

// Close releases the credential store
func (c *Client) Close() error {
	if closer, ok := c.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
