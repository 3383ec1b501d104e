package services

import (
	"context"

	"study-assistant/database"
	"study-assistant/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

type MockUserRepository struct {
	mock.Mock
}

var _ UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) AddUser(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) CheckUser(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

var _ SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(user *models.User) (*models.Session, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Get(sessionID string) (*models.Session, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Current() *models.Session {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.Session)
}

func (m *MockSessionStore) Delete(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

var _ CategoryRepository = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) AddCategory(ctx context.Context, userID int64, name string) (bool, error) {
	args := m.Called(ctx, userID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, userID int64, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

type MockTaskRepository struct {
	mock.Mock
}

var _ TaskRepository = (*MockTaskRepository)(nil)

func (m *MockTaskRepository) AddTask(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) ListTasks(ctx context.Context, userID int64, filter database.TaskFilter) ([]models.Task, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateTaskStatus(ctx context.Context, userID, taskID int64, completed bool) error {
	args := m.Called(ctx, userID, taskID, completed)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

type MockStudyRepository struct {
	mock.Mock
}

var _ StudyRepository = (*MockStudyRepository)(nil)

func (m *MockStudyRepository) AddStudyLog(ctx context.Context, log *models.StudyLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockStudyRepository) ListStudyLogs(ctx context.Context, userID int64, limit int) ([]models.StudyLog, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyLog), args.Error(1)
}

func (m *MockStudyRepository) CountDistinctStudyDays(ctx context.Context, userID int64, periodDays int) (int, error) {
	args := m.Called(ctx, userID, periodDays)
	return args.Int(0), args.Error(1)
}

func (m *MockStudyRepository) ListStudyDates(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockQuizRepository struct {
	mock.Mock
}

var _ QuizRepository = (*MockQuizRepository)(nil)

func (m *MockQuizRepository) AddQuizAttempt(ctx context.Context, attempt *models.QuizAttempt, questions []models.QuizQuestion) error {
	args := m.Called(ctx, attempt, questions)
	return args.Error(0)
}

func (m *MockQuizRepository) ListQuizAttempts(ctx context.Context, userID int64) ([]models.QuizAttempt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizAttempt), args.Error(1)
}

func (m *MockQuizRepository) GetQuizAttemptDetails(ctx context.Context, userID, attemptID int64) (*models.QuizAttemptDetail, error) {
	args := m.Called(ctx, userID, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizAttemptDetail), args.Error(1)
}

type MockAIContentRepository struct {
	mock.Mock
}

var _ AIContentRepository = (*MockAIContentRepository)(nil)

func (m *MockAIContentRepository) AddAIContent(ctx context.Context, content *models.AIContent) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockAIContentRepository) ListAIContent(ctx context.Context, userID int64, contentType models.ContentType) ([]models.AIContent, error) {
	args := m.Called(ctx, userID, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AIContent), args.Error(1)
}

func (m *MockAIContentRepository) GetAIContent(ctx context.Context, userID, contentID int64) (*models.AIContent, error) {
	args := m.Called(ctx, userID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AIContent), args.Error(1)
}

func (m *MockAIContentRepository) DeleteAIContent(ctx context.Context, userID, contentID int64) error {
	args := m.Called(ctx, userID, contentID)
	return args.Error(0)
}

type MockChatRepository struct {
	mock.Mock
}

var _ ChatRepository = (*MockChatRepository)(nil)

func (m *MockChatRepository) AddChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepository) GetChatHistory(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

type MockConfigRepository struct {
	mock.Mock
}

var _ ConfigRepository = (*MockConfigRepository)(nil)

func (m *MockConfigRepository) GetConfigValue(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockConfigRepository) SetConfigValue(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type MockAITextService struct {
	mock.Mock
}

var _ AITextService = (*MockAITextService)(nil)

func (m *MockAITextService) Generate(ctx context.Context, apiKey string, history []models.ChatMessage) (string, error) {
	args := m.Called(ctx, apiKey, history)
	return args.String(0), args.Error(1)
}
