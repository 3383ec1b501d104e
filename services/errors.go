package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrNotLoggedIn        = errors.New("no user is logged in")

	// Category errors
	ErrProtectedCategory = errors.New("the General category cannot be deleted")

	// Lookup errors
	ErrNotFound = errors.New("record not found")

	// AI errors
	ErrAPIKeyMissing      = errors.New("AI API key is not set")
	ErrAIUnavailable      = errors.New("AI text service is not configured")
	ErrInvalidQuizPayload = errors.New("AI response contained no valid quiz questions")
	ErrEmptyQuiz          = errors.New("quiz has no questions")
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
)
