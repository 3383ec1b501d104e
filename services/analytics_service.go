package services

import (
	"context"
	"sort"

	"study-assistant/database"
	"study-assistant/models"
)

const (
	pointsPerCompletedTask = 10
	pointsPerStudySession  = 5
	topSubjectCount        = 3
	recentQuizCount        = 3
)

// AnalyticsService aggregates progress figures across tasks, study logs and quizzes
type AnalyticsService struct {
	tasks   TaskRepository
	quizzes QuizRepository
	study   *StudyService
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(tasks TaskRepository, quizzes QuizRepository, study *StudyService) *AnalyticsService {
	return &AnalyticsService{tasks: tasks, quizzes: quizzes, study: study}
}

// Summary computes the progress overview for a user
func (as *AnalyticsService) Summary(ctx context.Context, userID int64) (*models.AnalyticsSummary, error) {
	summary := &models.AnalyticsSummary{
		TopSubjects:   []models.SubjectTime{},
		RecentQuizzes: []models.QuizAttempt{},
	}

	tasks, err := as.tasks.ListTasks(ctx, userID, database.TaskFilter{ShowCompleted: true})
	if err != nil {
		return nil, err
	}
	summary.TotalTasks = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			summary.CompletedTasks++
		}
	}
	summary.PendingTasks = summary.TotalTasks - summary.CompletedTasks
	if summary.TotalTasks > 0 {
		summary.CompletionRate = float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100
	}

	logs, err := as.study.List(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	summary.StudySessions = len(logs)
	minutesBySubject := make(map[string]int)
	for _, l := range logs {
		summary.StudyMinutes += l.DurationMinutes
		minutesBySubject[l.Subject] += l.DurationMinutes
	}
	summary.TopSubjects = topSubjects(minutesBySubject, topSubjectCount)

	consistency, err := as.study.Consistency(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.DaysStudiedWeek = consistency.Week
	summary.DaysStudiedMonth = consistency.Month

	if summary.StreakDays, err = as.study.Streak(ctx, userID); err != nil {
		return nil, err
	}

	attempts, err := as.quizzes.ListQuizAttempts(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.QuizzesTaken = len(attempts)
	correct, possible := 0, 0
	for _, a := range attempts {
		correct += a.Score
		possible += a.TotalQuestions
	}
	if possible > 0 {
		summary.AverageQuizScore = float64(correct) / float64(possible) * 100
	}
	if len(attempts) > recentQuizCount {
		attempts = attempts[:recentQuizCount]
	}
	summary.RecentQuizzes = append(summary.RecentQuizzes, attempts...)

	summary.LearningPoints = summary.CompletedTasks*pointsPerCompletedTask +
		summary.StudySessions*pointsPerStudySession +
		correct
	return summary, nil
}

// topSubjects orders subjects by total minutes, ties by name.
func topSubjects(minutes map[string]int, n int) []models.SubjectTime {
	subjects := make([]models.SubjectTime, 0, len(minutes))
	for subject, m := range minutes {
		subjects = append(subjects, models.SubjectTime{Subject: subject, Minutes: m})
	}
	sort.Slice(subjects, func(i, j int) bool {
		if subjects[i].Minutes != subjects[j].Minutes {
			return subjects[i].Minutes > subjects[j].Minutes
		}
		return subjects[i].Subject < subjects[j].Subject
	})
	if len(subjects) > n {
		subjects = subjects[:n]
	}
	return subjects
}
