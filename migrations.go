// Package shifts embeds the SQL migrations so the binary can migrate the
// database without shipping the migrations directory.
package shifts

import "embed"

// Migrations holds the goose migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
