// Package migrations embeds the schema migrations for every supported store
// driver, one directory per dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
