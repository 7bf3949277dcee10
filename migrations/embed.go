// Package migrations embeds the goose migrations shared by every store driver.
package migrations

import "embed"

// FS holds the SQL migration files at its root.
//
//go:embed *.sql
var FS embed.FS
