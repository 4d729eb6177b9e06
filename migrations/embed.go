// Package migrations embeds the versioned schema so that tests and the
// migrate command apply exactly the same files.
package migrations

import "embed"

//go:embed *.sql atlas.sum
var FS embed.FS

// Files lists the migration files in apply order.
var Files = []string{
	"001_initial_schema.sql",
	"002_payment_completion_guard.sql",
}
