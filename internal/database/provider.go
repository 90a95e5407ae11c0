package database

import (
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/hornerp/reporting-service/config"
)

// Open selects the backend from configuration and returns a ready
// Adapter. A set DATABASE_URL means the networked PostgreSQL backend over
// encrypted transport; failure to establish it is a *ConnectionError,
// never a silent fallback to the embedded file. An empty URL means the
// local SQLite file.
func Open(cfg config.DatabaseConfig, log *zap.Logger) (*Adapter, error) {
	var (
		dialect Dialect
		source  string
	)
	if cfg.URL != "" {
		dialect = &PostgresDialect{}
		source = cfg.URL
	} else {
		dialect = &SQLiteDialect{BusyTimeoutMS: cfg.BusyTimeoutMS}
		source = cfg.SQLitePath
	}

	dsn, err := dialect.DSN(source)
	if err != nil {
		return nil, &ConnectionError{Backend: dialect.Name(), Err: err}
	}

	db, err := sqlx.Connect(dialect.DriverName(), dsn)
	if err != nil {
		return nil, &ConnectionError{Backend: dialect.Name(), Err: err}
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifeSec) * time.Second)

	log.Info("database connected", zap.String("backend", dialect.Name()))
	return &Adapter{db: db, dialect: dialect, log: log}, nil
}

// NewAdapter wraps an already-open connection. Used by tests and by
// callers that manage their own pool.
func NewAdapter(db *sqlx.DB, dialect Dialect, log *zap.Logger) *Adapter {
	return &Adapter{db: db, dialect: dialect, log: log}
}
