package models

// SubjectTime is the total study time spent on one subject.
type SubjectTime struct {
	Subject string `json:"subject"`
	Minutes int    `json:"minutes"`
}

type AnalyticsSummary struct {
	TotalTasks       int           `json:"total_tasks"`
	CompletedTasks   int           `json:"completed_tasks"`
	PendingTasks     int           `json:"pending_tasks"`
	CompletionRate   float64       `json:"completion_rate"`
	StudySessions    int           `json:"study_sessions"`
	StudyMinutes     int           `json:"study_minutes"`
	TopSubjects      []SubjectTime `json:"top_subjects"`
	DaysStudiedWeek  int           `json:"days_studied_week"`
	DaysStudiedMonth int           `json:"days_studied_month"`
	QuizzesTaken     int           `json:"quizzes_taken"`
	AverageQuizScore float64       `json:"average_quiz_score"`
	RecentQuizzes    []QuizAttempt `json:"recent_quizzes"`
	StreakDays       int           `json:"streak_days"`
	LearningPoints   int           `json:"learning_points"`
}
