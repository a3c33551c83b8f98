// Package migrations содержит SQL-схему PostgreSQL-хранилища.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
