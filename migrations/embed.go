// Package migrations embeds the goose SQL migrations for the focuslog schema.
package migrations

import "embed"

// FS holds every *.sql migration file, in goose format.
//
//go:embed *.sql
var FS embed.FS
