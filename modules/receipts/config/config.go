package config

import "github.com/gaze-network/realpay-receipts/internal/postgres"

type Config struct {
	Database       string          `mapstructure:"database"` // `memory` | `postgres`
	Postgres       postgres.Config `mapstructure:"postgres"`
	APIHandlers    []string        `mapstructure:"api_handlers"` // e.g. `http`
	TokenDecimals  uint8           `mapstructure:"token_decimals"`
	RecentCapacity int             `mapstructure:"recent_capacity"`
}

const (
	DefaultTokenDecimals  = 6
	DefaultRecentCapacity = 1000
)

func Default() Config {
	return Config{
		Database:       "memory",
		APIHandlers:    []string{"http"},
		TokenDecimals:  DefaultTokenDecimals,
		RecentCapacity: DefaultRecentCapacity,
	}
}
