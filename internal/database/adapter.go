package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Adapter executes canonical-placeholder SQL against whichever backend is
// active. Queries are authored with '?' and rebound into the backend's
// placeholder syntax through sqlx before execution; bind markers are the
// only thing translated, the query text itself is never rewritten.
type Adapter struct {
	db      *sqlx.DB
	dialect Dialect
	log     *zap.Logger
}

// Placeholder is the canonical bind-parameter token core queries use.
// Pure accessor, no I/O.
func (a *Adapter) Placeholder() string { return "?" }

// AutoIncrementPK returns the backend's DDL fragment for an
// auto-generating integer primary key. Pure accessor, no I/O; external
// schema builders use it to hand-build backend-correct DDL.
func (a *Adapter) AutoIncrementPK() string { return a.dialect.AutoIncrementPK() }

// Backend names the active backend for diagnostics.
func (a *Adapter) Backend() string { return a.dialect.Name() }

// Dialect exposes the active dialect to query builders that need the
// per-day date expression.
func (a *Adapter) Dialect() Dialect { return a.dialect }

func (a *Adapter) Close() error { return a.db.Close() }

func (a *Adapter) rebind(query string) string {
	return sqlx.Rebind(a.dialect.BindType(), query)
}

func (a *Adapter) wrap(query string, err error) error {
	if err == nil {
		return nil
	}
	return &QueryError{Backend: a.dialect.Name(), Query: query, Err: err}
}

// Get scans a single row into dest. sql.ErrNoRows stays reachable through
// errors.Is on the returned error.
func (a *Adapter) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return a.wrap(query, a.db.GetContext(ctx, dest, a.rebind(query), args...))
}

// Select scans all rows into dest.
func (a *Adapter) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return a.wrap(query, a.db.SelectContext(ctx, dest, a.rebind(query), args...))
}

// Exec runs a statement that returns no rows.
func (a *Adapter) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	res, err := a.db.ExecContext(ctx, a.rebind(query), args...)
	return res, a.wrap(query, err)
}

// InsertReturningID inserts a row and returns the generated id uniformly
// across backends: through sql.Result where the driver supports it, via a
// RETURNING clause otherwise. The query must not carry its own RETURNING.
func (a *Adapter) InsertReturningID(ctx context.Context, query string, args ...interface{}) (int64, error) {
	return insertReturningID(ctx, a.db, a, query, args...)
}

// Tx runs fn inside a single transaction. Any error rolls back before
// returning control: PostgreSQL refuses further statements on a
// transaction that saw a failed statement until it is rolled back, and a
// rollback is harmless on SQLite. The connection is clean for the next
// caller either way.
func (a *Adapter) Tx(ctx context.Context, fn func(tx *Tx) error) error {
	txx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return a.wrap("BEGIN", err)
	}
	t := &Tx{tx: txx, a: a}
	if err := fn(t); err != nil {
		txx.Rollback()
		return err
	}
	if err := txx.Commit(); err != nil {
		txx.Rollback()
		return a.wrap("COMMIT", err)
	}
	return nil
}

// Tx is the in-transaction view of the adapter. Same canonical-placeholder
// contract as Adapter.
type Tx struct {
	tx *sqlx.Tx
	a  *Adapter
}

func (t *Tx) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return t.a.wrap(query, t.tx.GetContext(ctx, dest, t.a.rebind(query), args...))
}

func (t *Tx) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return t.a.wrap(query, t.tx.SelectContext(ctx, dest, t.a.rebind(query), args...))
}

func (t *Tx) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	res, err := t.tx.ExecContext(ctx, t.a.rebind(query), args...)
	return res, t.a.wrap(query, err)
}

func (t *Tx) InsertReturningID(ctx context.Context, query string, args ...interface{}) (int64, error) {
	return insertReturningID(ctx, t.tx, t.a, query, args...)
}

// execer is the subset of sqlx shared by DB and Tx that the id helper needs.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func insertReturningID(ctx context.Context, e execer, a *Adapter, query string, args ...interface{}) (int64, error) {
	if a.dialect.SupportsLastInsertID() {
		res, err := e.ExecContext(ctx, a.rebind(query), args...)
		if err != nil {
			return 0, a.wrap(query, err)
		}
		id, err := res.LastInsertId()
		return id, a.wrap(query, err)
	}
	query += " RETURNING id"
	var id int64
	if err := e.GetContext(ctx, &id, a.rebind(query), args...); err != nil {
		return 0, a.wrap(query, err)
	}
	return id, nil
}
