// Package config loads server configuration from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	"github.com/KirkDiggler/coc-sheet-api/internal/logger"
)

// Storage backends
const (
	StoreSheets = "sheets"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Stores lists the supported storage backends
var Stores = []string{StoreSheets, StoreRedis, StoreSQLite}

// Config holds the server configuration. Every field can be set with a
// COC_ prefixed environment variable.
type Config struct {
	GRPCPort int    `env:"GRPC_PORT" envDefault:"50051"`
	Store    string `env:"STORE" envDefault:"sheets"`

	// SheetEndpoint is the spreadsheet web app URL. It may be left empty; calls
	// then fail with a transport error.
	SheetEndpoint string        `env:"SHEET_ENDPOINT"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	RedisAddrs      []string `env:"REDIS_ADDRS" envSeparator:"," envDefault:"localhost:6379"`
	RedisMasterName string   `env:"REDIS_MASTER_NAME"`
	RedisPassword   string   `env:"REDIS_PASSWORD"`
	RedisDB         int      `env:"REDIS_DB" envDefault:"0"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/characters.db"`

	// OccupationBudget is the default occupation skill allowance
	OccupationBudget int `env:"OCCUPATION_BUDGET" envDefault:"300"`

	Log logger.Config `envPrefix:"LOG_"`
}

const envPrefix = "COC_"

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return parse(env.Options{Prefix: envPrefix})
}

// LoadFrom reads the configuration from the given variables only
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: envPrefix, Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return &cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpcPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("store", c.Store, Stores, vb)
	errors.ValidateRange("occupationBudget", c.OccupationBudget, 0, 10000, vb)

	if c.HTTPTimeout < 0 {
		vb.InvalidField("httpTimeout", "must not be negative")
	}

	switch c.Store {
	case StoreRedis:
		if len(c.RedisAddrs) == 0 {
			vb.RequiredField("redisAddrs")
		}
	case StoreSQLite:
		errors.ValidateRequired("sqlitePath", c.SQLitePath, vb)
	}

	return vb.Build()
}
