package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

const migrationsDir = "sql"

// SqlFiles holds the schema migrations, applied in file name order
//
//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate brings the movie club schema up to date. Applied versions are
// tracked by darwin, so it is safe to call on every start.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(SqlFiles, migrationsDir)
}
