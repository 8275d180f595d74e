// Package migrations embeds the SQL migration files so the server
// binary can apply them with goose without shipping the files alongside
// the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
