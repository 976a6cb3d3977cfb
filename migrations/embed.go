// Package migrations embeds the goose SQL migrations for the WanderWise schema
// so the server, the admin CLI, and the integration tests all apply the same
// files without depending on a path on disk.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass it to goose.NewProvider.
//
//go:embed *.sql
var FS embed.FS
