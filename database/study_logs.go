package database

import (
	"context"
	"database/sql"

	"study-assistant/models"
)

// ==================== STUDY LOG OPERATIONS ====================

// AddStudyLog records a finished study session. Logs are never updated.
func (r *Repository) AddStudyLog(ctx context.Context, log *models.StudyLog) error {
	if log.UserID <= 0 {
		return ErrMissingUser
	}
	if log.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if log.StartTime.IsZero() {
		_, log.StartTime = r.stamp()
	}

	res, err := r.exec.Execute(ctx, `
		INSERT INTO study_logs (user_id, subject, start_time, duration_minutes, notes)
		VALUES (?, ?, ?, ?, ?)
	`,
		log.UserID, log.Subject, log.StartTime.Format(models.TimestampLayout),
		log.DurationMinutes, nullString(log.Notes),
	)
	if err != nil {
		return err
	}

	log.ID = res.LastInsertID
	return nil
}

// ListStudyLogs returns the newest sessions first; limit <= 0 means all.
func (r *Repository) ListStudyLogs(ctx context.Context, userID int64, limit int) ([]models.StudyLog, error) {
	query := `
		SELECT log_id, user_id, subject, start_time, duration_minutes, notes
		FROM study_logs
		WHERE user_id = ?
		ORDER BY start_time DESC, log_id DESC
	`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	logs := make([]models.StudyLog, 0)
	err := r.exec.FetchAll(ctx, query, args, func(rows *sql.Rows) error {
		var l models.StudyLog
		var startTime, notes sql.NullString
		if err := rows.Scan(&l.ID, &l.UserID, &l.Subject, &startTime, &l.DurationMinutes, &notes); err != nil {
			return err
		}
		l.StartTime = parseTimestamp(startTime)
		l.Notes = notes.String
		logs = append(logs, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// CountDistinctStudyDays counts calendar days with a session starting on or
// after local midnight periodDays ago.
func (r *Repository) CountDistinctStudyDays(ctx context.Context, userID int64, periodDays int) (int, error) {
	threshold := startOfDay(r.now(), -periodDays).Format(models.TimestampLayout)

	var count int
	err := r.exec.FetchOne(ctx,
		"SELECT COUNT(DISTINCT DATE(start_time)) FROM study_logs WHERE user_id = ? AND start_time >= ?",
		[]any{userID, threshold},
		&count,
	)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListStudyDates returns every distinct day with a session, newest first,
// formatted as models.DateLayout.
func (r *Repository) ListStudyDates(ctx context.Context, userID int64) ([]string, error) {
	dates := make([]string, 0)
	err := r.exec.FetchAll(ctx, `
		SELECT DISTINCT DATE(start_time) AS day
		FROM study_logs
		WHERE user_id = ? AND DATE(start_time) IS NOT NULL
		ORDER BY day DESC
	`, []any{userID}, func(rows *sql.Rows) error {
		var day string
		if err := rows.Scan(&day); err != nil {
			return err
		}
		dates = append(dates, day)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dates, nil
}
