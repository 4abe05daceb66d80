package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string     PostgreSQL DSN
//	-e string     environment (local, dev, prod)
//	-s string     access token HMAC secret
//	-r string     refresh token HMAC secret
//	-t duration   access token lifetime (e.g. 15m)
//	-u duration   refresh token lifetime (e.g. 720h)
//	-n int        refresh token record lifetime, days
//
// os.Args is filtered with flagx.FilterArgs first so subcommand arguments do
// not reach this flag set.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-s", "-r", "-t", "-u", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.Env, "e", config.Env, "environment: local, dev or prod")
	fs.StringVar(&config.Auth.AccessTokenSecret, "s", config.Auth.AccessTokenSecret, "access token secret")
	fs.StringVar(&config.Auth.RefreshTokenSecret, "r", config.Auth.RefreshTokenSecret, "refresh token secret")
	fs.DurationVar(&config.Auth.AccessTokenTTL, "t", config.Auth.AccessTokenTTL, "access token ttl")
	fs.DurationVar(&config.Auth.RefreshTokenTTL, "u", config.Auth.RefreshTokenTTL, "refresh token ttl")
	fs.IntVar(&config.Auth.RefreshTokenTTLDays, "n", config.Auth.RefreshTokenTTLDays, "refresh token record ttl, days")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
