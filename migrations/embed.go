// Package migrations embeds the goose SQL migrations so binaries and tests can
// apply them without a checkout on disk.
package migrations

import "embed"

// FS holds every migration file
//
//go:embed *.sql
var FS embed.FS
