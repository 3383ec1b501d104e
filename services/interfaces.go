package services

import (
	"context"

	"study-assistant/database"
	"study-assistant/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	AddUser(ctx context.Context, username, password string) (*models.User, error)
	CheckUser(ctx context.Context, username, password string) (*models.User, error)
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	AddCategory(ctx context.Context, userID int64, name string) (bool, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	DeleteCategory(ctx context.Context, userID int64, name string) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	AddTask(ctx context.Context, task *models.Task) error
	ListTasks(ctx context.Context, userID int64, filter database.TaskFilter) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, userID, taskID int64, completed bool) error
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// StudyRepository defines the interface for study log data access
type StudyRepository interface {
	AddStudyLog(ctx context.Context, log *models.StudyLog) error
	ListStudyLogs(ctx context.Context, userID int64, limit int) ([]models.StudyLog, error)
	CountDistinctStudyDays(ctx context.Context, userID int64, periodDays int) (int, error)
	ListStudyDates(ctx context.Context, userID int64) ([]string, error)
}

// QuizRepository defines the interface for quiz attempt data access
type QuizRepository interface {
	AddQuizAttempt(ctx context.Context, attempt *models.QuizAttempt, questions []models.QuizQuestion) error
	ListQuizAttempts(ctx context.Context, userID int64) ([]models.QuizAttempt, error)
	GetQuizAttemptDetails(ctx context.Context, userID, attemptID int64) (*models.QuizAttemptDetail, error)
}

// AIContentRepository defines the interface for saved AI output
type AIContentRepository interface {
	AddAIContent(ctx context.Context, content *models.AIContent) error
	ListAIContent(ctx context.Context, userID int64, contentType models.ContentType) ([]models.AIContent, error)
	GetAIContent(ctx context.Context, userID, contentID int64) (*models.AIContent, error)
	DeleteAIContent(ctx context.Context, userID, contentID int64) error
}

// ChatRepository defines the interface for chat history data access
type ChatRepository interface {
	AddChatMessage(ctx context.Context, msg *models.ChatMessage) error
	GetChatHistory(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error)
}

// ConfigRepository defines the interface for application-wide settings
type ConfigRepository interface {
	GetConfigValue(ctx context.Context, key string) (string, bool, error)
	SetConfigValue(ctx context.Context, key, value string) error
}

// SessionStore defines the interface for session management
type SessionStore interface {
	Create(user *models.User) (*models.Session, error)
	Get(sessionID string) (*models.Session, error)
	Current() *models.Session
	Delete(sessionID string) error
}

// AITextService generates model replies. history is chronological and ends
// with the message being answered.
type AITextService interface {
	Generate(ctx context.Context, apiKey string, history []models.ChatMessage) (string, error)
}
