package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"study-assistant/database"
	"study-assistant/models"
	"study-assistant/validator"
)

// TaskService handles business logic for tasks
type TaskService struct {
	repo      TaskRepository
	validator *validator.Validator
}

// NewTaskService creates a new task service
func NewTaskService(repo TaskRepository, v *validator.Validator) *TaskService {
	return &TaskService{repo: repo, validator: v}
}

// Add creates a task for the user
func (ts *TaskService) Add(ctx context.Context, userID int64, req models.CreateTaskRequest) (*models.Task, error) {
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.TrimSpace(req.Category)
	req.DueDate = strings.TrimSpace(req.DueDate)
	if err := ts.validator.Validate(&req); err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      userID,
		Description: req.Description,
		Category:    req.Category,
		DueDate:     req.DueDate,
	}
	if err := ts.repo.AddTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}
	return task, nil
}

func (ts *TaskService) List(ctx context.Context, userID int64, filter database.TaskFilter) ([]models.Task, error) {
	return ts.repo.ListTasks(ctx, userID, filter)
}

// Toggle sets a task's completion flag
func (ts *TaskService) Toggle(ctx context.Context, userID, taskID int64, completed bool) error {
	return mapNotFound(ts.repo.UpdateTaskStatus(ctx, userID, taskID, completed))
}

func (ts *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	return mapNotFound(ts.repo.DeleteTask(ctx, userID, taskID))
}

// DueReminders returns the pending tasks that need attention now: overdue
// ones first, then those due today.
func (ts *TaskService) DueReminders(ctx context.Context, userID int64) ([]models.Task, error) {
	overdue, err := ts.repo.ListTasks(ctx, userID, database.TaskFilter{Due: database.DueOverdue})
	if err != nil {
		return nil, err
	}
	today, err := ts.repo.ListTasks(ctx, userID, database.TaskFilter{Due: database.DueToday})
	if err != nil {
		return nil, err
	}
	return append(overdue, today...), nil
}

func mapNotFound(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
