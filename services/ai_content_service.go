package services

import (
	"context"
	"fmt"
	"strings"

	"study-assistant/models"
	"study-assistant/validator"
)

// AIContentService keeps AI output the user chose to save
type AIContentService struct {
	repo      AIContentRepository
	validator *validator.Validator
}

// NewAIContentService creates a new AI content service
func NewAIContentService(repo AIContentRepository, v *validator.Validator) *AIContentService {
	return &AIContentService{repo: repo, validator: v}
}

func (s *AIContentService) Save(ctx context.Context, userID int64, req models.SaveAIContentRequest) (*models.AIContent, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	content := &models.AIContent{
		UserID:     userID,
		Type:       req.Type,
		Title:      req.Title,
		InputText:  req.InputText,
		OutputText: req.OutputText,
	}
	if err := s.repo.AddAIContent(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to save AI content: %w", err)
	}
	return content, nil
}

// List returns summaries, newest first. An empty type lists everything.
func (s *AIContentService) List(ctx context.Context, userID int64, contentType models.ContentType) ([]models.AIContent, error) {
	return s.repo.ListAIContent(ctx, userID, contentType)
}

func (s *AIContentService) Get(ctx context.Context, userID, contentID int64) (*models.AIContent, error) {
	content, err := s.repo.GetAIContent(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrNotFound
	}
	return content, nil
}

func (s *AIContentService) Delete(ctx context.Context, userID, contentID int64) error {
	return mapNotFound(s.repo.DeleteAIContent(ctx, userID, contentID))
}
