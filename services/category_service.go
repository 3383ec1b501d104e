package services

import (
	"context"
	"errors"
	"strings"

	"study-assistant/database"
	"study-assistant/models"
	"study-assistant/validator"
)

// CategoryService handles business logic for task categories
type CategoryService struct {
	repo      CategoryRepository
	validator *validator.Validator
}

// NewCategoryService creates a new category service
func NewCategoryService(repo CategoryRepository, v *validator.Validator) *CategoryService {
	return &CategoryService{repo: repo, validator: v}
}

// List retrieves all categories for a user, General first
func (cs *CategoryService) List(ctx context.Context, userID int64) ([]models.Category, error) {
	return cs.repo.ListCategories(ctx, userID)
}

// Add creates a category. Adding an existing name is not an error; the
// boolean reports whether anything was created.
func (cs *CategoryService) Add(ctx context.Context, userID int64, name string) (bool, error) {
	req := models.CreateCategoryRequest{Name: strings.TrimSpace(name)}
	if err := cs.validator.Validate(&req); err != nil {
		return false, err
	}
	return cs.repo.AddCategory(ctx, userID, req.Name)
}

// Delete removes a category and moves its tasks to General
func (cs *CategoryService) Delete(ctx context.Context, userID int64, name string) error {
	err := cs.repo.DeleteCategory(ctx, userID, strings.TrimSpace(name))
	if errors.Is(err, database.ErrProtectedCategory) {
		return ErrProtectedCategory
	}
	return err
}
