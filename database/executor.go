package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

const (
	opExecute  = "execute"
	opFetchOne = "fetch_one"
	opFetchAll = "fetch_all"
)

// ExecResult is what a successful mutating statement reports back.
type ExecResult struct {
	LastInsertID int64
	RowsAffected int64
}

// Executor runs one statement per call. Each call opens its own connection
// through the Gateway and closes it before returning, on every path.
// Storage failures are logged with the statement and returned as *QueryError.
type Executor struct {
	gateway *Gateway
	logger  *slog.Logger
}

func NewExecutor(gateway *Gateway, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{gateway: gateway, logger: logger}
}

// Execute runs a mutating statement. SQLite commits it on completion.
func (e *Executor) Execute(ctx context.Context, query string, args ...any) (ExecResult, error) {
	opID := uuid.NewString()

	conn, err := e.gateway.Connect(ctx)
	if err != nil {
		return ExecResult{}, e.fail(opExecute, opID, query, args, err)
	}
	defer e.release(conn, opID)

	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return ExecResult{}, e.fail(opExecute, opID, query, args, err)
	}

	var res ExecResult
	if res.LastInsertID, err = result.LastInsertId(); err != nil {
		return ExecResult{}, e.fail(opExecute, opID, query, args, err)
	}
	if res.RowsAffected, err = result.RowsAffected(); err != nil {
		return ExecResult{}, e.fail(opExecute, opID, query, args, err)
	}
	return res, nil
}

// FetchOne scans the first row into dest. It returns ErrNotFound when the
// query matches nothing, which is not logged as a failure.
func (e *Executor) FetchOne(ctx context.Context, query string, args []any, dest ...any) error {
	opID := uuid.NewString()

	conn, err := e.gateway.Connect(ctx)
	if err != nil {
		return e.fail(opFetchOne, opID, query, args, err)
	}
	defer e.release(conn, opID)

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return e.fail(opFetchOne, opID, query, args, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return e.fail(opFetchOne, opID, query, args, err)
		}
		return ErrNotFound
	}
	if err := rows.Scan(dest...); err != nil {
		return e.fail(opFetchOne, opID, query, args, err)
	}
	return nil
}

// FetchAll calls scan once per row, in result order. Zero rows is success.
func (e *Executor) FetchAll(ctx context.Context, query string, args []any, scan func(*sql.Rows) error) error {
	opID := uuid.NewString()

	conn, err := e.gateway.Connect(ctx)
	if err != nil {
		return e.fail(opFetchAll, opID, query, args, err)
	}
	defer e.release(conn, opID)

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return e.fail(opFetchAll, opID, query, args, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return e.fail(opFetchAll, opID, query, args, err)
		}
	}
	if err := rows.Err(); err != nil {
		return e.fail(opFetchAll, opID, query, args, err)
	}
	return nil
}

func (e *Executor) release(conn *Conn, opID string) {
	if err := conn.Close(); err != nil {
		e.logger.Warn("failed to close connection", "op_id", opID, "error", err)
	}
}

func (e *Executor) fail(op, opID, query string, args []any, err error) error {
	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}

	query = compactQuery(query)
	e.logger.Error("database operation failed",
		"op", op,
		"op_id", opID,
		"query", query,
		"args", args,
		"error", err,
	)
	return &QueryError{Op: op, Query: query, Args: args, Err: err}
}

func compactQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
