package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"study-assistant/models"
)

// ==================== QUIZ ATTEMPT OPERATIONS ====================

// AddQuizAttempt stores the attempt summary together with a snapshot of every
// question as it was shown. The snapshot is written once and never changed.
func (r *Repository) AddQuizAttempt(ctx context.Context, attempt *models.QuizAttempt, questions []models.QuizQuestion) error {
	if attempt.UserID <= 0 {
		return ErrMissingUser
	}
	if questions == nil {
		questions = []models.QuizQuestion{}
	}

	snapshot, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode quiz snapshot: %w", err)
	}

	if attempt.QuizDate.IsZero() {
		_, attempt.QuizDate = r.stamp()
	}

	res, err := r.exec.Execute(ctx, `
		INSERT INTO quiz_attempts (user_id, topic, quiz_date, score, total_questions, questions_data)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		attempt.UserID, attempt.Topic, attempt.QuizDate.Format(models.TimestampLayout),
		attempt.Score, attempt.TotalQuestions, string(snapshot),
	)
	if err != nil {
		return err
	}

	attempt.ID = res.LastInsertID
	return nil
}

// ListQuizAttempts returns attempt summaries, newest first, without snapshots.
func (r *Repository) ListQuizAttempts(ctx context.Context, userID int64) ([]models.QuizAttempt, error) {
	attempts := make([]models.QuizAttempt, 0)
	err := r.exec.FetchAll(ctx, `
		SELECT attempt_id, user_id, topic, quiz_date, score, total_questions
		FROM quiz_attempts
		WHERE user_id = ?
		ORDER BY quiz_date DESC, attempt_id DESC
	`, []any{userID}, func(rows *sql.Rows) error {
		var a models.QuizAttempt
		var quizDate sql.NullString
		if err := rows.Scan(&a.ID, &a.UserID, &a.Topic, &quizDate, &a.Score, &a.TotalQuestions); err != nil {
			return err
		}
		a.QuizDate = parseTimestamp(quizDate)
		attempts = append(attempts, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

// GetQuizAttemptDetails loads the question snapshot of one attempt. Attempts
// saved before snapshots existed come back with no questions.
func (r *Repository) GetQuizAttemptDetails(ctx context.Context, userID, attemptID int64) (*models.QuizAttemptDetail, error) {
	detail := models.QuizAttemptDetail{ID: attemptID}
	var snapshot sql.NullString

	err := r.exec.FetchOne(ctx,
		"SELECT topic, questions_data FROM quiz_attempts WHERE attempt_id = ? AND user_id = ?",
		[]any{attemptID, userID},
		&detail.Topic, &snapshot,
	)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	detail.Questions = []models.QuizQuestion{}
	if snapshot.Valid && snapshot.String != "" {
		if err := json.Unmarshal([]byte(snapshot.String), &detail.Questions); err != nil {
			return nil, fmt.Errorf("decode quiz snapshot %d: %w", attemptID, err)
		}
	}
	return &detail, nil
}
