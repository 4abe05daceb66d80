package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig maps environment variables onto Config. Unset variables keep the
// value loaded from defaults or the JSON file.
type EnvConfig struct {
	Env                 string        `env:"ENV"`
	DatabaseDSN         string        `env:"DATABASE_DSN"`
	AccessTokenSecret   string        `env:"AUTH_ACCESS_TOKEN_SECRET"`
	AccessTokenTTL      time.Duration `env:"AUTH_ACCESS_TOKEN_TTL"`
	RefreshTokenSecret  string        `env:"AUTH_REFRESH_TOKEN_SECRET"`
	RefreshTokenTTL     time.Duration `env:"AUTH_REFRESH_TOKEN_TTL"`
	RefreshTokenTTLDays int           `env:"AUTH_REFRESH_TOKEN_TTL_DAYS"`
}

func parseEnv(config *Config) {
	var e EnvConfig
	if err := cleanenv.ReadEnv(&e); err != nil {
		panic(err)
	}

	setString(&config.Env, e.Env)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.Auth.AccessTokenSecret, e.AccessTokenSecret)
	setString(&config.Auth.RefreshTokenSecret, e.RefreshTokenSecret)
	if e.AccessTokenTTL != 0 {
		config.Auth.AccessTokenTTL = e.AccessTokenTTL
	}
	if e.RefreshTokenTTL != 0 {
		config.Auth.RefreshTokenTTL = e.RefreshTokenTTL
	}
	if e.RefreshTokenTTLDays != 0 {
		config.Auth.RefreshTokenTTLDays = e.RefreshTokenTTLDays
	}
}
