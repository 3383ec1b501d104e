package database

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a single-row read matches nothing.
	ErrNotFound = errors.New("database: no matching row")

	// ErrNotConnected is returned when a closed connection is used.
	ErrNotConnected = errors.New("database: connection is closed")

	// ErrProtectedCategory is returned when deleting the General category.
	ErrProtectedCategory = errors.New("database: the General category cannot be deleted")

	// ErrMissingUser is returned when an owned row is written without a user.
	ErrMissingUser = errors.New("database: user identity is required")

	// ErrInvalidDuration is returned for study sessions of zero or negative length.
	ErrInvalidDuration = errors.New("database: study duration must be positive")

	// ErrNotSQLiteFile is returned when restoring from a file that is not a database.
	ErrNotSQLiteFile = errors.New("database: file is not a SQLite database")
)

// QueryError describes a statement that failed at the storage layer.
type QueryError struct {
	Op    string
	Query string
	Args  []any
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsUniqueViolation reports whether err was caused by a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports whether err was caused by a FOREIGN KEY constraint.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isDuplicateColumnErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column name")
}
