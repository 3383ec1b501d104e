package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const (
	// DriverSQLite3 is the cgo driver from mattn/go-sqlite3.
	DriverSQLite3 = "sqlite3"
	// DriverSQLite is the pure Go driver from modernc.org/sqlite.
	DriverSQLite = "sqlite"

	DefaultLockTimeout = 10 * time.Second
)

// Gateway hands out short-lived connections to the backing data file.
// Nothing is kept open between operations, so the file can be copied
// or replaced whenever no operation is in flight.
type Gateway struct {
	path        string
	driver      string
	lockTimeout time.Duration
}

type Option func(*Gateway)

// WithDriver selects the database/sql driver name.
func WithDriver(driver string) Option {
	return func(g *Gateway) {
		g.driver = driver
	}
}

// WithLockTimeout bounds how long a statement waits on a locked file.
func WithLockTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.lockTimeout = d
	}
}

func NewGateway(dbPath string, opts ...Option) (*Gateway, error) {
	if dbPath == "" {
		return nil, errors.New("database path is required")
	}
	if dbPath == ":memory:" {
		return nil, errors.New("in-memory databases do not survive a closed connection")
	}

	g := &Gateway{
		path:        dbPath,
		driver:      DriverSQLite3,
		lockTimeout: DefaultLockTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.driver != DriverSQLite3 && g.driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported sqlite driver %q", g.driver)
	}
	if g.lockTimeout < 0 {
		g.lockTimeout = 0
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	return g, nil
}

func (g *Gateway) Path() string {
	return g.path
}

func (g *Gateway) Driver() string {
	return g.driver
}

// Connect opens a fresh handle and applies the per-connection pragmas.
// Foreign key enforcement is not persisted by SQLite, so it is issued on
// every connection.
func (g *Gateway) Connect(ctx context.Context) (*Conn, error) {
	db, err := sql.Open(g.driver, g.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", g.lockTimeout.Milliseconds()),
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			conn.Close()
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	return &Conn{db: db, conn: conn}, nil
}

// Conn is a single handle, valid for one logical operation.
type Conn struct {
	db   *sql.DB
	conn *sql.Conn
}

// Connected reports whether the handle is still usable.
func (c *Conn) Connected() bool {
	return c != nil && c.conn != nil
}

// Close releases the handle. It is safe to call more than once; after the
// first call the handle reports ErrNotConnected.
func (c *Conn) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	err := errors.Join(c.conn.Close(), c.db.Close())
	c.conn = nil
	c.db = nil
	return err
}

func (c *Conn) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if !c.Connected() {
		return nil, ErrNotConnected
	}
	return c.conn.ExecContext(ctx, query, args...)
}

func (c *Conn) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if !c.Connected() {
		return nil, ErrNotConnected
	}
	return c.conn.QueryContext(ctx, query, args...)
}
