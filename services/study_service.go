package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"study-assistant/models"
	"study-assistant/validator"
)

// StudyService handles study session logging and consistency tracking
type StudyService struct {
	repo      StudyRepository
	validator *validator.Validator
	now       func() time.Time
}

// NewStudyService creates a new study service
func NewStudyService(repo StudyRepository, v *validator.Validator) *StudyService {
	return &StudyService{repo: repo, validator: v, now: time.Now}
}

// Consistency is the number of distinct study days in the trailing week and month.
type Consistency struct {
	Week  int `json:"week"`
	Month int `json:"month"`
}

// LogSession records a study session. The start time defaults to now.
func (ss *StudyService) LogSession(ctx context.Context, userID int64, req models.LogSessionRequest) (*models.StudyLog, error) {
	req.Subject = strings.TrimSpace(req.Subject)
	req.StartTime = strings.TrimSpace(req.StartTime)
	if err := ss.validator.Validate(&req); err != nil {
		return nil, err
	}

	start := ss.now()
	if req.StartTime != "" {
		parsed, err := time.ParseInLocation(models.TimestampLayout, req.StartTime, time.Local)
		if err != nil {
			return nil, err
		}
		start = parsed
	}

	log := &models.StudyLog{
		UserID:          userID,
		Subject:         req.Subject,
		StartTime:       start,
		DurationMinutes: req.DurationMinutes,
		Notes:           strings.TrimSpace(req.Notes),
	}
	if err := ss.repo.AddStudyLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to log study session: %w", err)
	}
	return log, nil
}

func (ss *StudyService) List(ctx context.Context, userID int64, limit int) ([]models.StudyLog, error) {
	return ss.repo.ListStudyLogs(ctx, userID, limit)
}

// Streak returns the current run of consecutive study days.
func (ss *StudyService) Streak(ctx context.Context, userID int64) (int, error) {
	dates, err := ss.repo.ListStudyDates(ctx, userID)
	if err != nil {
		return 0, err
	}
	return calculateStreak(dates, ss.now()), nil
}

func (ss *StudyService) Consistency(ctx context.Context, userID int64) (Consistency, error) {
	week, err := ss.repo.CountDistinctStudyDays(ctx, userID, 7)
	if err != nil {
		return Consistency{}, err
	}
	month, err := ss.repo.CountDistinctStudyDays(ctx, userID, 30)
	if err != nil {
		return Consistency{}, err
	}
	return Consistency{Week: week, Month: month}, nil
}

// calculateStreak counts consecutive days ending today, or ending yesterday
// when nothing was logged today yet. dates may be in any order.
func calculateStreak(dates []string, now time.Time) int {
	studied := make(map[string]bool, len(dates))
	for _, d := range dates {
		studied[d] = true
	}

	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if !studied[day.Format(models.DateLayout)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for studied[day.Format(models.DateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
