package services

import (
	"context"
	"errors"
	"testing"

	"study-assistant/database"
	"study-assistant/models"
	"study-assistant/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService(t *testing.T) {
	ctx := context.Background()

	t.Run("Add trims and validates", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("AddCategory", ctx, int64(1), "Biology").Return(true, nil)

		service := NewCategoryService(mockRepo, validator.New())
		created, err := service.Add(ctx, 1, "  Biology ")
		require.NoError(t, err)
		assert.True(t, created)

		_, err = service.Add(ctx, 1, "   ")
		assert.Error(t, err)

		_, err = service.Add(ctx, 1, "Bio<script>")
		assert.Error(t, err)

		mockRepo.AssertExpectations(t)
		mockRepo.AssertNumberOfCalls(t, "AddCategory", 1)
	})

	t.Run("Delete maps the protected category error", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("DeleteCategory", ctx, int64(1), "General").Return(database.ErrProtectedCategory)
		mockRepo.On("DeleteCategory", ctx, int64(1), "Urgent").Return(nil)

		service := NewCategoryService(mockRepo, validator.New())
		assert.ErrorIs(t, service.Delete(ctx, 1, "General"), ErrProtectedCategory)
		assert.NoError(t, service.Delete(ctx, 1, "Urgent"))

		mockRepo.AssertExpectations(t)
	})
}

func TestTaskService_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		req          models.CreateTaskRequest
		mockSetup    func(*MockTaskRepository)
		wantErr      bool
		expectedTask *models.Task
	}{
		{
			name: "Success - Passes trimmed fields",
			req:  models.CreateTaskRequest{Description: " Essay ", Category: "Academic", DueDate: "2025-03-12"},
			mockSetup: func(repo *MockTaskRepository) {
				repo.On("AddTask", ctx, mock.MatchedBy(func(task *models.Task) bool {
					return task.UserID == 1 && task.Description == "Essay" && task.DueDate == "2025-03-12"
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*models.Task).ID = 42
				}).Return(nil)
			},
			expectedTask: &models.Task{ID: 42, UserID: 1, Description: "Essay", Category: "Academic", DueDate: "2025-03-12"},
		},
		{
			name:    "Error - Bad due date",
			req:     models.CreateTaskRequest{Description: "Essay", DueDate: "12/03/2025"},
			wantErr: true,
		},
		{
			name: "Error - Repository failure",
			req:  models.CreateTaskRequest{Description: "Essay"},
			mockSetup: func(repo *MockTaskRepository) {
				repo.On("AddTask", ctx, mock.Anything).Return(errors.New("database is locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo)
			}

			service := NewTaskService(mockRepo, validator.New())
			task, err := service.Add(ctx, 1, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, task)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTask, task)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_ToggleAndDelete(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTaskRepository)
	mockRepo.On("UpdateTaskStatus", ctx, int64(1), int64(5), true).Return(nil)
	mockRepo.On("UpdateTaskStatus", ctx, int64(1), int64(6), true).Return(database.ErrNotFound)
	mockRepo.On("DeleteTask", ctx, int64(1), int64(6)).Return(database.ErrNotFound)

	service := NewTaskService(mockRepo, validator.New())
	assert.NoError(t, service.Toggle(ctx, 1, 5, true))
	assert.ErrorIs(t, service.Toggle(ctx, 1, 6, true), ErrNotFound)
	assert.ErrorIs(t, service.Delete(ctx, 1, 6), ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestTaskService_DueReminders(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTaskRepository)
	mockRepo.On("ListTasks", ctx, int64(1), database.TaskFilter{Due: database.DueOverdue}).
		Return([]models.Task{{ID: 1, Description: "late"}}, nil)
	mockRepo.On("ListTasks", ctx, int64(1), database.TaskFilter{Due: database.DueToday}).
		Return([]models.Task{{ID: 2, Description: "now"}}, nil)

	service := NewTaskService(mockRepo, validator.New())
	tasks, err := service.DueReminders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "late", tasks[0].Description)
	assert.Equal(t, "now", tasks[1].Description)

	mockRepo.AssertExpectations(t)
}
