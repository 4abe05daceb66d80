package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept both
// "15m"-style strings and integer nanoseconds.
type JsonConfig struct {
	Env                 string         `json:"env"`
	DatabaseDSN         string         `json:"database_dsn"`
	AccessTokenSecret   string         `json:"access_token_secret"`
	AccessTokenTTL      timex.Duration `json:"access_token_ttl"`
	RefreshTokenSecret  string         `json:"refresh_token_secret"`
	RefreshTokenTTL     timex.Duration `json:"refresh_token_ttl"`
	RefreshTokenTTLDays int            `json:"refresh_token_ttl_days"`
}

// parseJson overlays values from the file named by -c/-config. Keys missing
// from the file leave the current value untouched. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.Env, c.Env)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.Auth.AccessTokenSecret, c.AccessTokenSecret)
	setString(&config.Auth.RefreshTokenSecret, c.RefreshTokenSecret)
	if c.AccessTokenTTL.Duration != 0 {
		config.Auth.AccessTokenTTL = c.AccessTokenTTL.Duration
	}
	if c.RefreshTokenTTL.Duration != 0 {
		config.Auth.RefreshTokenTTL = c.RefreshTokenTTL.Duration
	}
	if c.RefreshTokenTTLDays != 0 {
		config.Auth.RefreshTokenTTLDays = c.RefreshTokenTTLDays
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
