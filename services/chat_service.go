package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"study-assistant/models"
	"study-assistant/validator"
)

// ChatContextWindow is how many recent messages are sent with each request.
const ChatContextWindow = 20

// ChatService runs the conversation with the AI text service
type ChatService struct {
	repo      ChatRepository
	settings  *SettingsService
	ai        AITextService
	validator *validator.Validator
	logger    *slog.Logger
}

// NewChatService creates a new chat service. ai may be nil, in which case
// Send fails with ErrAIUnavailable.
func NewChatService(repo ChatRepository, settings *SettingsService, ai AITextService, v *validator.Validator, logger *slog.Logger) *ChatService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{
		repo:      repo,
		settings:  settings,
		ai:        ai,
		validator: v,
		logger:    logger,
	}
}

// Send stores the user's message, asks the AI for a reply with the recent
// conversation as context, and stores the reply.
func (cs *ChatService) Send(ctx context.Context, userID int64, text string) (*models.ChatMessage, error) {
	req := models.ChatRequest{Message: strings.TrimSpace(text)}
	if err := cs.validator.Validate(&req); err != nil {
		return nil, err
	}
	if cs.ai == nil {
		return nil, ErrAIUnavailable
	}

	apiKey, err := cs.settings.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := cs.store(ctx, userID, models.ChatRoleUser, req.Message); err != nil {
		return nil, fmt.Errorf("failed to store chat message: %w", err)
	}

	history, err := cs.repo.GetChatHistory(ctx, userID, ChatContextWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	reply, err := cs.ai.Generate(ctx, apiKey, history)
	if err != nil {
		cs.logger.Error("AI request failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("AI request failed: %w", err)
	}

	modelMsg, err := cs.store(ctx, userID, models.ChatRoleModel, strings.TrimSpace(reply))
	if err != nil {
		return nil, fmt.Errorf("failed to store chat reply: %w", err)
	}
	return modelMsg, nil
}

func (cs *ChatService) store(ctx context.Context, userID int64, role models.ChatRole, content string) (*models.ChatMessage, error) {
	req := models.ChatMessageRequest{Role: role, Content: content}
	if err := cs.validator.Validate(&req); err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{UserID: userID, Role: req.Role, Content: req.Content}
	if err := cs.repo.AddChatMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// History returns the most recent messages, oldest first
func (cs *ChatService) History(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error) {
	return cs.repo.GetChatHistory(ctx, userID, limit)
}
