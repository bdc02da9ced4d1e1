package factory

import (
	"errors"
	"time"

	"github.com/mrodgar/gymrat/internal/dependencies/clock"
	"github.com/mrodgar/gymrat/internal/dependencies/ids"
	"github.com/mrodgar/gymrat/internal/services/auth"
	"github.com/mrodgar/gymrat/internal/services/catalog"
	"github.com/mrodgar/gymrat/internal/services/gym"
	"github.com/mrodgar/gymrat/internal/services/token"
	"github.com/mrodgar/gymrat/internal/storage"
	"github.com/mrodgar/gymrat/internal/storage/memory"
	redisstorage "github.com/mrodgar/gymrat/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	// Services
	TokenService   *token.Service
	AuthService    *auth.Service
	GymService     *gym.Service
	CatalogService *catalog.Service
}

// Config holds configuration for the application factory
type Config struct {
	// JWTSecret signs and verifies auth tokens (required, at least 32 bytes)
	JWTSecret string
	// TokenTTL is the token lifetime; zero means token.DefaultTTL
	TokenTTL time.Duration
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
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
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	gen := ids.New()

	ttl := cfg.TokenTTL
	if ttl == 0 {
		ttl = token.DefaultTTL
	}

	return newWithDependencies(store, clk, gen, cfg.JWTSecret, ttl)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, gen ids.Generator, jwtSecret string, ttl time.Duration) (*App, error) {
	tokenService, err := token.New([]byte(jwtSecret), ttl, clk)
	if err != nil {
		return nil, err
	}

	authService := auth.New(store, tokenService, clk, gen)
	gymService := gym.New(store, clk, gen)
	catalogService := catalog.New(store, gen)

	return &App{
		Storage:        store,
		Clock:          clk,
		IDs:            gen,
		TokenService:   tokenService,
		AuthService:    authService,
		GymService:     gymService,
		CatalogService: catalogService,
	}, nil
}
