package database

import (
	"context"
	"fmt"
	"log/slog"
)

// ColumnMigration adds one column that older installations are missing.
type ColumnMigration struct {
	Table      string
	Column     string
	Definition string
}

// ColumnMigrations accumulate across releases. Entries are only ever appended.
// SQLite refuses non-constant defaults in ADD COLUMN, so created_at has none
// here; inserts supply the value.
var ColumnMigrations = []ColumnMigration{
	{Table: "tasks", Column: "category", Definition: "category TEXT DEFAULT 'General'"},
	{Table: "tasks", Column: "created_at", Definition: "created_at TEXT"},
	{Table: "quiz_attempts", Column: "questions_data", Definition: "questions_data TEXT"},
}

// TableSchemas creates every table and index that does not exist yet.
var TableSchemas = []string{
	// Users table
	`CREATE TABLE IF NOT EXISTS users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS task_categories (
		category_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		UNIQUE(user_id, name),
		FOREIGN KEY (user_id) REFERENCES users (user_id) ON DELETE CASCADE
	)`,

	// category is free text, not a foreign key to task_categories
	`CREATE TABLE IF NOT EXISTS tasks (
		task_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT DEFAULT 'General',
		due_date TEXT,
		completed INTEGER DEFAULT 0,
		created_at TEXT DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (user_id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS study_logs (
		log_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		subject TEXT NOT NULL,
		start_time TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		notes TEXT,
		FOREIGN KEY (user_id) REFERENCES users (user_id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS quiz_attempts (
		attempt_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		topic TEXT NOT NULL,
		quiz_date TEXT NOT NULL,
		score INTEGER NOT NULL,
		total_questions INTEGER NOT NULL,
		questions_data TEXT,
		FOREIGN KEY (user_id) REFERENCES users (user_id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS config (
		key TEXT PRIMARY KEY,
		value TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS ai_generated_content (
		content_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		title TEXT,
		input_text TEXT,
		output_text TEXT NOT NULL,
		created_at TEXT DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (user_id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS ai_chat_history (
		message_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		timestamp TEXT DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (user_id) ON DELETE CASCADE
	)`,

	// Indexes for performance. None of them touch migrated columns, so they
	// apply even when the column phase was abandoned.
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_due ON tasks(user_id, due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_study_logs_user_start ON study_logs(user_id, start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_quiz_attempts_user_date ON quiz_attempts(user_id, quiz_date)`,
	`CREATE INDEX IF NOT EXISTS idx_ai_content_user_created ON ai_generated_content(user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_user_timestamp ON ai_chat_history(user_id, timestamp)`,
}

// MigrationReport summarises one startup migration run.
type MigrationReport struct {
	AddedColumns   []string
	ColumnPhaseErr error
}

// ColumnPhaseAbandoned reports whether the additive column phase stopped early.
func (r *MigrationReport) ColumnPhaseAbandoned() bool {
	return r.ColumnPhaseErr != nil
}

type Migrator struct {
	gateway *Gateway
	logger  *slog.Logger
	columns []ColumnMigration
	tables  []string
}

func NewMigrator(gateway *Gateway, logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{
		gateway: gateway,
		logger:  logger,
		columns: ColumnMigrations,
		tables:  TableSchemas,
	}
}

// Migrate runs both startup phases and is safe to call on every start.
// A failing column phase is logged and recorded in the report, and the
// table phase still runs. Only a failing table phase returns an error.
func (m *Migrator) Migrate(ctx context.Context) (*MigrationReport, error) {
	report := &MigrationReport{}

	if err := m.migrateColumns(ctx, report); err != nil {
		report.ColumnPhaseErr = err
		m.logger.Error("column migration abandoned", "error", err)
	}

	if err := m.createTables(ctx); err != nil {
		m.logger.Error("table creation failed", "error", err)
		return report, err
	}

	m.logger.Info("schema ready", "path", m.gateway.Path(), "added_columns", len(report.AddedColumns))
	return report, nil
}

func (m *Migrator) migrateColumns(ctx context.Context, report *MigrationReport) error {
	conn, err := m.gateway.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, col := range m.columns {
		exists, err := tableExists(ctx, conn, col.Table)
		if err != nil {
			return fmt.Errorf("check table %s: %w", col.Table, err)
		}
		if !exists {
			continue
		}

		present, err := columnExists(ctx, conn, col.Table, col.Column)
		if err != nil {
			return fmt.Errorf("check column %s.%s: %w", col.Table, col.Column, err)
		}
		if present {
			continue
		}

		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", col.Table, col.Definition)
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			if isDuplicateColumnErr(err) {
				m.logger.Debug("column already present", "table", col.Table, "column", col.Column)
				continue
			}
			return fmt.Errorf("add column %s.%s: %w", col.Table, col.Column, err)
		}

		m.logger.Info("added column", "table", col.Table, "column", col.Column)
		report.AddedColumns = append(report.AddedColumns, col.Table+"."+col.Column)
	}

	return nil
}

func (m *Migrator) createTables(ctx context.Context) error {
	conn, err := m.gateway.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, query := range m.tables {
		if _, err := conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SchemaSnapshot returns the stored definition of every table and index,
// ordered by type and name.
func (m *Migrator) SchemaSnapshot(ctx context.Context) ([]string, error) {
	conn, err := m.gateway.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
		SELECT sql FROM sqlite_master
		WHERE sql IS NOT NULL AND name NOT LIKE 'sqlite_%'
		ORDER BY type, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshot := make([]string, 0)
	for rows.Next() {
		var stmt string
		if err := rows.Scan(&stmt); err != nil {
			return nil, err
		}
		snapshot = append(snapshot, stmt)
	}
	return snapshot, rows.Err()
}

func tableExists(ctx context.Context, conn *Conn, table string) (bool, error) {
	rows, err := conn.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found := rows.Next()
	return found, rows.Err()
}

func columnExists(ctx context.Context, conn *Conn, table, column string) (bool, error) {
	rows, err := conn.QueryContext(ctx, "SELECT name FROM pragma_table_info(?) WHERE name = ?", table, column)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found := rows.Next()
	return found, rows.Err()
}
