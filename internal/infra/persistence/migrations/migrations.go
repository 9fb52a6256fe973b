// Package migrations embeds the schema migration files so they ship inside
// the binary and apply at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
