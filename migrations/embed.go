// Package migrations embeds the goose SQL migrations so they can be
// applied programmatically at startup and from tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
