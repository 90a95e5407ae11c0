package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDialect is the embedded single-file backend. The busy timeout
// keeps concurrent local writers from failing immediately on a locked
// database file.
type SQLiteDialect struct {
	BusyTimeoutMS int
}

func (d *SQLiteDialect) Name() string       { return "sqlite" }
func (d *SQLiteDialect) DriverName() string { return "sqlite3" }

func (d *SQLiteDialect) DSN(source string) (string, error) {
	if source == "" {
		return "", fmt.Errorf("sqlite: empty database path")
	}
	timeout := d.BusyTimeoutMS
	if timeout <= 0 {
		timeout = 30000
	}
	return fmt.Sprintf("file:%s?_busy_timeout=%d", source, timeout), nil
}

func (d *SQLiteDialect) BindType() int { return sqlx.QUESTION }

func (d *SQLiteDialect) AutoIncrementPK() string {
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

func (d *SQLiteDialect) ColumnExistsSQL() string {
	return `SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`
}

func (d *SQLiteDialect) DateExpr(column string) string {
	return fmt.Sprintf("date(%s)", column)
}

func (d *SQLiteDialect) SupportsLastInsertID() bool { return true }
