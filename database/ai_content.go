package database

import (
	"context"
	"database/sql"

	"study-assistant/models"
)

// ==================== AI CONTENT OPERATIONS ====================

// AddAIContent saves generated text verbatim. Title and input are optional.
func (r *Repository) AddAIContent(ctx context.Context, content *models.AIContent) error {
	if content.UserID <= 0 {
		return ErrMissingUser
	}

	createdAt, created := r.utcStamp()
	res, err := r.exec.Execute(ctx, `
		INSERT INTO ai_generated_content (user_id, type, title, input_text, output_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		content.UserID, string(content.Type), nullString(content.Title),
		nullString(content.InputText), content.OutputText, createdAt,
	)
	if err != nil {
		return err
	}

	content.ID = res.LastInsertID
	content.CreatedAt = created
	return nil
}

// ListAIContent returns saved items newest first, without their text bodies.
// An empty contentType lists every type.
func (r *Repository) ListAIContent(ctx context.Context, userID int64, contentType models.ContentType) ([]models.AIContent, error) {
	query := `
		SELECT content_id, user_id, type, title, created_at
		FROM ai_generated_content
		WHERE user_id = ?`
	args := []any{userID}
	if contentType != "" {
		query += " AND type = ?"
		args = append(args, string(contentType))
	}
	query += " ORDER BY created_at DESC, content_id DESC"

	items := make([]models.AIContent, 0)
	err := r.exec.FetchAll(ctx, query, args, func(rows *sql.Rows) error {
		var c models.AIContent
		var contentType string
		var title, createdAt sql.NullString
		if err := rows.Scan(&c.ID, &c.UserID, &contentType, &title, &createdAt); err != nil {
			return err
		}
		c.Type = models.ContentType(contentType)
		c.Title = title.String
		c.CreatedAt = parseUTCTimestamp(createdAt)
		items = append(items, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetAIContent retrieves one saved item with its full text.
func (r *Repository) GetAIContent(ctx context.Context, userID, contentID int64) (*models.AIContent, error) {
	c := models.AIContent{ID: contentID, UserID: userID}
	var contentType string
	var title, inputText, createdAt sql.NullString

	err := r.exec.FetchOne(ctx, `
		SELECT type, title, input_text, output_text, created_at
		FROM ai_generated_content
		WHERE content_id = ? AND user_id = ?
	`, []any{contentID, userID}, &contentType, &title, &inputText, &c.OutputText, &createdAt)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.Type = models.ContentType(contentType)
	c.Title = title.String
	c.InputText = inputText.String
	c.CreatedAt = parseUTCTimestamp(createdAt)
	return &c, nil
}

// DeleteAIContent removes one saved item.
func (r *Repository) DeleteAIContent(ctx context.Context, userID, contentID int64) error {
	res, err := r.exec.Execute(ctx,
		"DELETE FROM ai_generated_content WHERE content_id = ? AND user_id = ?",
		contentID, userID,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
