// Package migrations embeds the goose SQL migrations for the authkeeper schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
