package accounts

import "embed"

// Migrations holds the embedded goose migration files applied by the
// migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
