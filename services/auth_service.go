package services

import (
	"context"
	"fmt"
	"strings"

	"study-assistant/database"
	"study-assistant/models"
	"study-assistant/validator"
)

// AuthService handles authentication business logic
type AuthService struct {
	repo         UserRepository
	sessionStore SessionStore
	validator    *validator.Validator
}

// NewAuthService creates a new auth service
func NewAuthService(repo UserRepository, sessionStore SessionStore, v *validator.Validator) *AuthService {
	return &AuthService{
		repo:         repo,
		sessionStore: sessionStore,
		validator:    v,
	}
}

// Register creates an account. New accounts start with the default categories.
func (as *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := as.validator.Validate(&req); err != nil {
		return nil, err
	}

	user, err := as.repo.AddUser(ctx, req.Username, req.Password)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and makes the user current.
func (as *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	user, err := as.repo.CheckUser(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return nil, fmt.Errorf("failed to check credentials: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	return as.sessionStore.Create(user)
}

// Logout handles user logout
func (as *AuthService) Logout(sessionID string) error {
	return as.sessionStore.Delete(sessionID)
}

// CurrentSession returns the logged-in user's session
func (as *AuthService) CurrentSession() (*models.Session, error) {
	sess := as.sessionStore.Current()
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	return sess, nil
}
