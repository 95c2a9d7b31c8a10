package migrations

import "embed"

// FS holds the versioned schema migrations and their atlas.sum.
//
//go:embed *.sql atlas.sum
var FS embed.FS
