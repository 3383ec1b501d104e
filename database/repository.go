package database

import (
	"database/sql"
	"errors"
	"time"

	"study-assistant/models"
)

// Repository exposes the per-entity operations. Every method is a single
// Executor call, except where noted, and opens its own connection.
type Repository struct {
	exec *Executor
	now  func() time.Time
}

func NewRepository(exec *Executor) *Repository {
	return &Repository{exec: exec, now: time.Now}
}

// SetClock replaces the time source used for "today" and insert timestamps.
func (r *Repository) SetClock(now func() time.Time) {
	r.now = now
}

func (r *Repository) today() string {
	return r.now().Format(models.DateLayout)
}

// stamp returns the current local time as stored, and parsed back at the
// stored one-second precision. study_logs.start_time and quiz_attempts.quiz_date
// hold local wall-clock time.
func (r *Repository) stamp() (string, time.Time) {
	return formatStamp(r.now())
}

// utcStamp is stamp for the columns whose schema default is CURRENT_TIMESTAMP:
// tasks.created_at, ai_generated_content.created_at and ai_chat_history.timestamp.
// Those columns hold UTC.
func (r *Repository) utcStamp() (string, time.Time) {
	return formatStamp(r.now().UTC())
}

func formatStamp(now time.Time) (string, time.Time) {
	s := now.Format(models.TimestampLayout)
	t, _ := time.ParseInLocation(models.TimestampLayout, s, now.Location())
	return s, t
}

// startOfDay returns local midnight of t shifted by days.
func startOfDay(t time.Time, days int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, t.Location())
}

// nullString stores empty strings as NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// parseTimestamp reads a stored local timestamp. Legacy rows may hold a bare
// date or nothing at all; those yield a date at midnight or the zero time.
func parseTimestamp(s sql.NullString) time.Time {
	return parseTimestampIn(s, time.Local)
}

// parseUTCTimestamp reads a timestamp written by utcStamp or CURRENT_TIMESTAMP.
func parseUTCTimestamp(s sql.NullString) time.Time {
	return parseTimestampIn(s, time.UTC)
}

func parseTimestampIn(s sql.NullString, loc *time.Location) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	for _, layout := range []string{models.TimestampLayout, models.DateLayout, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s.String, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}

// notFound reports whether err marks an absent row. Single-row getters turn
// that into (nil, nil).
func notFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
