package database

import (
	"context"
	"database/sql"
	"slices"

	"study-assistant/models"
)

// ==================== CHAT HISTORY OPERATIONS ====================

// DefaultChatHistoryLimit is the number of messages loaded when no limit is given.
const DefaultChatHistoryLimit = 50

// AddChatMessage appends a message to the user's chat history.
func (r *Repository) AddChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	if msg.UserID <= 0 {
		return ErrMissingUser
	}

	ts, created := r.utcStamp()
	res, err := r.exec.Execute(ctx,
		"INSERT INTO ai_chat_history (user_id, role, content, timestamp) VALUES (?, ?, ?, ?)",
		msg.UserID, string(msg.Role), msg.Content, ts,
	)
	if err != nil {
		return err
	}

	msg.ID = res.LastInsertID
	msg.Timestamp = created
	return nil
}

// GetChatHistory returns the most recent limit messages, oldest first.
func (r *Repository) GetChatHistory(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultChatHistoryLimit
	}

	history := make([]models.ChatMessage, 0, limit)
	err := r.exec.FetchAll(ctx, `
		SELECT message_id, user_id, role, content, timestamp
		FROM ai_chat_history
		WHERE user_id = ?
		ORDER BY timestamp DESC, message_id DESC
		LIMIT ?
	`, []any{userID, limit}, func(rows *sql.Rows) error {
		var m models.ChatMessage
		var role string
		var ts sql.NullString
		if err := rows.Scan(&m.ID, &m.UserID, &role, &m.Content, &ts); err != nil {
			return err
		}
		m.Role = models.ChatRole(role)
		m.Timestamp = parseUTCTimestamp(ts)
		history = append(history, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Reverse(history)
	return history, nil
}
