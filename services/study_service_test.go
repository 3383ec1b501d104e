package services

import (
	"context"
	"testing"
	"time"

	"study-assistant/models"
	"study-assistant/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 12, 18, 0, 0, 0, time.Local)
}

func TestCalculateStreak(t *testing.T) {
	now := fixedNow()

	tests := []struct {
		name     string
		dates    []string
		expected int
	}{
		{"No sessions", nil, 0},
		{"Three days including today", []string{"2025-03-12", "2025-03-11", "2025-03-10"}, 3},
		{"Run ending yesterday still counts", []string{"2025-03-11", "2025-03-10"}, 2},
		{"Gap breaks the run", []string{"2025-03-12", "2025-03-11", "2025-03-09", "2025-03-08"}, 2},
		{"Last session two days ago", []string{"2025-03-10", "2025-03-09"}, 0},
		{"Only today", []string{"2025-03-12"}, 1},
		{"Unordered input", []string{"2025-03-10", "2025-03-12", "2025-03-11"}, 3},
		{"Across a month boundary", []string{"2025-03-01", "2025-02-28"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calculateStreak(tt.dates, now))
		})
	}

	t.Run("Month boundary run", func(t *testing.T) {
		march2 := time.Date(2025, time.March, 2, 8, 0, 0, 0, time.Local)
		assert.Equal(t, 3, calculateStreak([]string{"2025-03-02", "2025-03-01", "2025-02-28"}, march2))
	})
}

func TestStudyService_LogSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Start time defaults to now", func(t *testing.T) {
		mockRepo := new(MockStudyRepository)
		mockRepo.On("AddStudyLog", ctx, mock.MatchedBy(func(l *models.StudyLog) bool {
			return l.StartTime.Equal(fixedNow()) && l.Subject == "Math" && l.DurationMinutes == 30
		})).Return(nil)

		service := NewStudyService(mockRepo, validator.New())
		service.now = fixedNow

		log, err := service.LogSession(ctx, 1, models.LogSessionRequest{Subject: " Math ", DurationMinutes: 30})
		require.NoError(t, err)
		assert.Equal(t, int64(1), log.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Explicit start time is parsed", func(t *testing.T) {
		mockRepo := new(MockStudyRepository)
		want := time.Date(2025, time.March, 1, 7, 15, 0, 0, time.Local)
		mockRepo.On("AddStudyLog", ctx, mock.MatchedBy(func(l *models.StudyLog) bool {
			return l.StartTime.Equal(want)
		})).Return(nil)

		service := NewStudyService(mockRepo, validator.New())
		_, err := service.LogSession(ctx, 1, models.LogSessionRequest{Subject: "Math", DurationMinutes: 30, StartTime: "2025-03-01 07:15:00"})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Non-positive duration is rejected", func(t *testing.T) {
		mockRepo := new(MockStudyRepository)
		service := NewStudyService(mockRepo, validator.New())

		_, err := service.LogSession(ctx, 1, models.LogSessionRequest{Subject: "Math", DurationMinutes: 0})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "AddStudyLog", mock.Anything, mock.Anything)
	})
}

func TestStudyService_StreakAndConsistency(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockStudyRepository)
	mockRepo.On("ListStudyDates", ctx, int64(1)).Return([]string{"2025-03-12", "2025-03-11", "2025-03-10"}, nil)
	mockRepo.On("CountDistinctStudyDays", ctx, int64(1), 7).Return(3, nil)
	mockRepo.On("CountDistinctStudyDays", ctx, int64(1), 30).Return(9, nil)

	service := NewStudyService(mockRepo, validator.New())
	service.now = fixedNow

	streak, err := service.Streak(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)

	consistency, err := service.Consistency(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, Consistency{Week: 3, Month: 9}, consistency)

	mockRepo.AssertExpectations(t)
}
