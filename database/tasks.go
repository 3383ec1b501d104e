package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"study-assistant/models"
)

// ==================== TASK OPERATIONS ====================

// DueFilter narrows a task listing by due date.
type DueFilter string

const (
	DueAny      DueFilter = ""
	DueToday    DueFilter = "today"
	DueUpcoming DueFilter = "upcoming"
	DueOverdue  DueFilter = "overdue"
)

// AllCategories disables the category filter.
const AllCategories = "all"

// UpcomingWindowDays is how far ahead DueUpcoming looks, today excluded.
const UpcomingWindowDays = 7

type TaskFilter struct {
	ShowCompleted bool
	Category      string
	Due           DueFilter
	Limit         int
}

// AddTask inserts a task and fills in its ID and creation time.
func (r *Repository) AddTask(ctx context.Context, task *models.Task) error {
	if task.UserID <= 0 {
		return ErrMissingUser
	}
	if task.Category == "" {
		task.Category = models.GeneralCategory
	}

	createdAt, created := r.utcStamp()
	res, err := r.exec.Execute(ctx, `
		INSERT INTO tasks (user_id, description, category, due_date, completed, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`,
		task.UserID, task.Description, task.Category, nullString(task.DueDate),
		createdAt,
	)
	if err != nil {
		return err
	}

	task.ID = res.LastInsertID
	task.Completed = false
	task.CreatedAt = created
	return nil
}

// ListTasks returns the user's tasks. Tasks without a due date sort last,
// the rest by ascending due date, ties by newest first.
func (r *Repository) ListTasks(ctx context.Context, userID int64, filter TaskFilter) ([]models.Task, error) {
	var b strings.Builder
	args := []any{userID}

	b.WriteString(`SELECT task_id, user_id, description, category, due_date, completed, created_at
		FROM tasks WHERE user_id = ?`)

	if !filter.ShowCompleted {
		b.WriteString(" AND completed = 0")
	}
	if filter.Category != "" && !strings.EqualFold(filter.Category, AllCategories) {
		b.WriteString(" AND category = ?")
		args = append(args, filter.Category)
	}

	today := r.today()
	switch filter.Due {
	case DueAny:
	case DueToday:
		b.WriteString(" AND due_date = ?")
		args = append(args, today)
	case DueUpcoming:
		horizon := startOfDay(r.now(), UpcomingWindowDays).Format(models.DateLayout)
		b.WriteString(" AND due_date > ? AND due_date <= ?")
		args = append(args, today, horizon)
	case DueOverdue:
		b.WriteString(" AND due_date IS NOT NULL AND due_date != '' AND due_date < ? AND completed = 0")
		args = append(args, today)
	default:
		return nil, fmt.Errorf("unknown due filter %q", filter.Due)
	}

	b.WriteString(` ORDER BY CASE WHEN due_date IS NULL OR due_date = '' THEN 1 ELSE 0 END,
		due_date ASC, created_at DESC, task_id DESC`)
	if filter.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	tasks := make([]models.Task, 0)
	err := r.exec.FetchAll(ctx, b.String(), args, func(rows *sql.Rows) error {
		var t models.Task
		var category, dueDate, createdAt sql.NullString
		var completed int
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &category, &dueDate, &completed, &createdAt); err != nil {
			return err
		}
		t.Category = category.String
		if !category.Valid {
			t.Category = models.GeneralCategory
		}
		t.DueDate = dueDate.String
		t.Completed = completed != 0
		t.CreatedAt = parseUTCTimestamp(createdAt)
		tasks = append(tasks, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTaskStatus sets the completion flag of one of the user's tasks.
func (r *Repository) UpdateTaskStatus(ctx context.Context, userID, taskID int64, completed bool) error {
	done := 0
	if completed {
		done = 1
	}
	res, err := r.exec.Execute(ctx,
		"UPDATE tasks SET completed = ? WHERE task_id = ? AND user_id = ?",
		done, taskID, userID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTask removes one of the user's tasks.
func (r *Repository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	res, err := r.exec.Execute(ctx,
		"DELETE FROM tasks WHERE task_id = ? AND user_id = ?",
		taskID, userID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
