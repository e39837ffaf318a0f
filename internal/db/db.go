// Package db provides database connectivity and operations for lift.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"go.uber.org/multierr"
	_ "modernc.org/sqlite"

	"github.com/gerunddev/lift/internal/log"
)

// ErrNotFound is returned when a requested record is not found.
var ErrNotFound = errors.New("record not found")

// ErrUnavailable is returned by every operation when no database is open,
// either because none was ever opened or because it has been closed.
var ErrUnavailable = errors.New("local database unavailable")

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Querier is satisfied by both *sqlx.DB and *sqlx.Tx, so the same query
// helpers run inside and outside a transaction.
type Querier interface {
	sqlx.ExtContext
}

// ExecResult reports the outcome of an INSERT, UPDATE or DELETE.
type ExecResult struct {
	// InsertID is set only after an INSERT that produced a row id.
	InsertID *int64
	// RowsAffected is set whenever the driver reports it.
	RowsAffected *int64
}

// DB holds the database connection and provides methods for data access.
type DB struct {
	mu   sync.RWMutex
	conn *sqlx.DB
}

// New creates a new database connection and applies all migrations.
// If the path is ":memory:", an in-memory database is created.
// Otherwise, the parent directory is created if it doesn't exist.
func New(path string) (*DB, error) {
	if path != MemoryPath {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sqlx.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: SQLite has a single writer, and an in-memory database
	// only exists on the connection that created it.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		log.CloseError("database", conn.Close())
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.Migrate(); err != nil {
		log.CloseError("database", conn.Close())
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection. Closing twice is not an error.
func (d *DB) Close() error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	return err
}

// handle returns the live connection or ErrUnavailable.
func (d *DB) handle() (*sqlx.DB, error) {
	if d == nil {
		return nil, ErrUnavailable
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.conn == nil {
		return nil, ErrUnavailable
	}
	return d.conn, nil
}

// FetchAll runs a SELECT and scans every row into T using its db tags.
// No rows is not an error: the result is an empty, non-nil slice.
func FetchAll[T any](ctx context.Context, q Querier, query string, args ...any) ([]T, error) {
	rows := []T{}
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// Execute runs an INSERT, UPDATE or DELETE statement.
func Execute(ctx context.Context, q Querier, query string, args ...any) (ExecResult, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return ExecResult{}, err
	}

	var out ExecResult
	if n, err := res.RowsAffected(); err == nil {
		out.RowsAffected = &n
	}
	if isInsert(query) && out.RowsAffected != nil && *out.RowsAffected > 0 {
		if id, err := res.LastInsertId(); err == nil {
			out.InsertID = &id
		}
	}
	return out, nil
}

func isInsert(query string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "INSERT")
}

// Fetch is FetchAll against the open database.
func Fetch[T any](ctx context.Context, d *DB, query string, args ...any) ([]T, error) {
	conn, err := d.handle()
	if err != nil {
		return nil, err
	}
	return FetchAll[T](ctx, conn, query, args...)
}

// Execute is the package-level Execute against the open database.
func (d *DB) Execute(ctx context.Context, query string, args ...any) (ExecResult, error) {
	conn, err := d.handle()
	if err != nil {
		return ExecResult{}, err
	}
	return Execute(ctx, conn, query, args...)
}

// WithTx runs fn inside a single transaction. Any error from fn rolls the
// whole transaction back, so callers never observe partial writes.
func (d *DB) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	conn, err := d.handle()
	if err != nil {
		return err
	}

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Warn("failed to rollback transaction", "error", rbErr)
			return multierr.Append(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// insertID extracts the row id of an INSERT, failing loudly if the driver
// did not report one.
func insertID(res ExecResult, table string) (int64, error) {
	if res.InsertID == nil {
		return 0, fmt.Errorf("insert into %s returned no row id", table)
	}
	return *res.InsertID, nil
}

// affectedOne maps zero affected rows to ErrNotFound.
func affectedOne(res ExecResult) error {
	if res.RowsAffected != nil && *res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
