package database

import (
	"fmt"
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// PostgresDialect is the networked backend. The transport must be
// encrypted: the DSN always carries at least sslmode=require. A URL
// pinning verify-ca or verify-full keeps its stricter mode; anything
// weaker is overridden. The provider fails closed if the handshake
// cannot be established.
type PostgresDialect struct{}

func (d *PostgresDialect) Name() string       { return "postgres" }
func (d *PostgresDialect) DriverName() string { return "pgx" }

func (d *PostgresDialect) DSN(source string) (string, error) {
	if source == "" {
		return "", fmt.Errorf("postgres: empty connection URL")
	}
	u, err := url.Parse(source)
	if err != nil {
		return "", fmt.Errorf("postgres: parse connection URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("postgres: unsupported URL scheme %q", u.Scheme)
	}
	q := u.Query()
	switch q.Get("sslmode") {
	case "require", "verify-ca", "verify-full":
		// Pinned mode is at least as strict as required; keep it.
	default:
		// Absent or weaker than require (disable, allow, prefer) gets
		// forced up. Plaintext to the networked backend is never allowed.
		q.Set("sslmode", "require")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (d *PostgresDialect) BindType() int { return sqlx.DOLLAR }

func (d *PostgresDialect) AutoIncrementPK() string {
	return "SERIAL PRIMARY KEY"
}

func (d *PostgresDialect) ColumnExistsSQL() string {
	return `SELECT COUNT(*) FROM information_schema.columns WHERE table_name = ? AND column_name = ?`
}

func (d *PostgresDialect) DateExpr(column string) string {
	// Day prefix of the zero-padded ISO timestamp text. Yields the same
	// string shape SQLite's date() does, so trend rows scan identically.
	return fmt.Sprintf("SUBSTR(CAST(%s AS TEXT), 1, 10)", column)
}

func (d *PostgresDialect) SupportsLastInsertID() bool { return false }
