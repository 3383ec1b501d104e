package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"study-assistant/models"
)

// ==================== CATEGORY OPERATIONS ====================

// AddCategory inserts a category, ignoring duplicates. It reports whether a
// new row was created.
func (r *Repository) AddCategory(ctx context.Context, userID int64, name string) (bool, error) {
	res, err := r.exec.Execute(ctx,
		"INSERT OR IGNORE INTO task_categories (user_id, name) VALUES (?, ?)",
		userID, name,
	)
	if err != nil {
		return false, err
	}
	return res.RowsAffected > 0, nil
}

// ListCategories returns the user's categories alphabetically, with General
// always first, even when it is missing from storage.
func (r *Repository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := r.exec.FetchAll(ctx,
		"SELECT category_id, user_id, name FROM task_categories WHERE user_id = ? ORDER BY name",
		[]any{userID},
		func(rows *sql.Rows) error {
			var c models.Category
			if err := rows.Scan(&c.ID, &c.UserID, &c.Name); err != nil {
				return err
			}
			categories = append(categories, c)
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return generalFirst(userID, categories), nil
}

func generalFirst(userID int64, categories []models.Category) []models.Category {
	general := models.Category{UserID: userID, Name: models.GeneralCategory}
	ordered := make([]models.Category, 0, len(categories)+1)
	ordered = append(ordered, general)
	for _, c := range categories {
		if c.Name == models.GeneralCategory {
			ordered[0] = c
			continue
		}
		ordered = append(ordered, c)
	}
	return ordered
}

// DeleteCategory moves the category's tasks to General and then removes the
// category. The two statements are independent: a failed retarget does not
// stop the delete, and both failures are returned together.
func (r *Repository) DeleteCategory(ctx context.Context, userID int64, name string) error {
	if strings.EqualFold(name, models.GeneralCategory) {
		return ErrProtectedCategory
	}

	_, retargetErr := r.exec.Execute(ctx,
		"UPDATE tasks SET category = ? WHERE user_id = ? AND category = ?",
		models.GeneralCategory, userID, name,
	)
	_, deleteErr := r.exec.Execute(ctx,
		"DELETE FROM task_categories WHERE user_id = ? AND name = ?",
		userID, name,
	)
	return errors.Join(retargetErr, deleteErr)
}
