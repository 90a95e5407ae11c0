package database

// Dialect abstracts everything backend-specific the data layer needs.
// Two backends are supported: the embedded SQLite file store and the
// networked PostgreSQL store. Core queries are authored against the
// canonical '?' placeholder and logical column names; the dialect supplies
// the bind-var shape, DDL fragments, and schema probes.
type Dialect interface {
	// Name identifies the backend for diagnostics ("sqlite", "postgres").
	Name() string

	// DriverName is the database/sql driver to open.
	DriverName() string

	// DSN builds the data source name. For SQLite the source is a file
	// path; for PostgreSQL it is a connection URL.
	DSN(source string) (string, error)

	// BindType is the sqlx bind variety used to rebind canonical '?'
	// queries into the backend's placeholder syntax.
	BindType() int

	// AutoIncrementPK is the DDL fragment for an auto-generating integer
	// primary key column.
	AutoIncrementPK() string

	// ColumnExistsSQL is a canonical-placeholder query taking
	// (table, column) and returning a count. Used to guard idempotent
	// add-column migrations.
	ColumnExistsSQL() string

	// DateExpr wraps a timestamp column in the backend's per-day
	// truncation for GROUP BY day queries.
	DateExpr(column string) string

	// SupportsLastInsertID reports whether the driver yields generated
	// ids through sql.Result. When false, inserts needing the id are
	// issued with a RETURNING clause instead.
	SupportsLastInsertID() bool
}
