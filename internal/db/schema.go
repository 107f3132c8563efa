package db

import "database/sql"

// SchemaSQL is the authoritative current schema. Upgrades from older
// databases go through the migrations list instead.
const SchemaSQL = `
-- Build invocations, append-only
CREATE TABLE IF NOT EXISTS builds (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	recipe_name TEXT,
	dir TEXT NOT NULL,
	command TEXT NOT NULL,
	started_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_builds_started_at ON builds(started_at);
`

// InitSchema creates or upgrades the schema on the given connection.
func InitSchema(conn *sql.DB) error {
	// A database without a schema_version table is either brand new or
	// predates versioning. Fresh databases get the modern schema and all
	// migrations marked applied; everything else goes through RunMigrations.
	var tableCount int
	err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		var buildsCount int
		err = conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='builds'").Scan(&buildsCount)
		if err != nil {
			return err
		}
		if buildsCount > 0 {
			return RunMigrations(conn)
		}

		if _, err := conn.Exec(SchemaSQL); err != nil {
			return err
		}
		if _, err := conn.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err := conn.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	return RunMigrations(conn)
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
