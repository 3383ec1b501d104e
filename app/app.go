package app

import (
	"log/slog"

	"study-assistant/database"
	"study-assistant/services"
	"study-assistant/session"
	"study-assistant/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Gateway      *database.Gateway
	Migrator     *database.Migrator
	Repo         *database.Repository
	SessionStore *session.Store
	Validator    *validator.Validator
	Logger       *slog.Logger

	Auth       *services.AuthService
	Categories *services.CategoryService
	Tasks      *services.TaskService
	Study      *services.StudyService
	Quizzes    *services.QuizService
	AIContent  *services.AIContentService
	Settings   *services.SettingsService
	Chat       *services.ChatService
	Analytics  *services.AnalyticsService
}

// New creates a new App instance with all dependencies. ai may be nil when
// no AI text service is available.
func New(gateway *database.Gateway, migrator *database.Migrator, repo *database.Repository, sessionStore *session.Store, ai services.AITextService, logger *slog.Logger) *App {
	v := validator.New()
	settings := services.NewSettingsService(repo)
	study := services.NewStudyService(repo, v)

	return &App{
		Gateway:      gateway,
		Migrator:     migrator,
		Repo:         repo,
		SessionStore: sessionStore,
		Validator:    v,
		Logger:       logger,

		Auth:       services.NewAuthService(repo, sessionStore, v),
		Categories: services.NewCategoryService(repo, v),
		Tasks:      services.NewTaskService(repo, v),
		Study:      study,
		Quizzes:    services.NewQuizService(repo, logger),
		AIContent:  services.NewAIContentService(repo, v),
		Settings:   settings,
		Chat:       services.NewChatService(repo, settings, ai, v, logger),
		Analytics:  services.NewAnalyticsService(repo, repo, study),
	}
}
