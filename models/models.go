package models

import "time"

// Storage formats for dates and timestamps. SQLite CURRENT_TIMESTAMP uses
// TimestampLayout, so every timestamp column shares it.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// GeneralCategory always exists for every user and can never be deleted.
const GeneralCategory = "General"

// DefaultCategories are seeded for every newly registered user.
var DefaultCategories = []string{GeneralCategory, "Academic", "Personal", "Project", "Urgent"}

// APIKeyConfigKey is the config entry holding the AI text service credential.
const APIKeyConfigKey = "GEMINI_API_KEY"

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

type ContentType string

const (
	ContentTypeExplain           ContentType = "explain"
	ContentTypeSummarize         ContentType = "summarize"
	ContentTypePracticeQuestions ContentType = "practice_questions"
	ContentTypeQuote             ContentType = "quote"
	ContentTypeOther             ContentType = "other"
)

type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
}

type Category struct {
	ID     int64  `json:"category_id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type Task struct {
	ID          int64     `json:"task_id"`
	UserID      int64     `json:"user_id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	DueDate     string    `json:"due_date,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

type StudyLog struct {
	ID              int64     `json:"log_id"`
	UserID          int64     `json:"user_id"`
	Subject         string    `json:"subject"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
}

// QuizQuestion is one question as shown to the user, including the answer
// they picked. UserAnswerIndex is nil when the question was left unanswered.
type QuizQuestion struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
	Explanation        string   `json:"explanation"`
	UserAnswerIndex    *int     `json:"user_answer_index"`
}

// AnsweredCorrectly reports whether the recorded answer matches the correct option.
func (q QuizQuestion) AnsweredCorrectly() bool {
	return q.UserAnswerIndex != nil && *q.UserAnswerIndex == q.CorrectOptionIndex
}

// QuizAttempt is the summary row of a finished quiz.
type QuizAttempt struct {
	ID             int64     `json:"attempt_id"`
	UserID         int64     `json:"user_id"`
	Topic          string    `json:"topic"`
	QuizDate       time.Time `json:"quiz_date"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
}

// QuizAttemptDetail carries the question snapshot saved with an attempt.
type QuizAttemptDetail struct {
	ID        int64          `json:"attempt_id"`
	Topic     string         `json:"topic"`
	Questions []QuizQuestion `json:"questions"`
}

type AIContent struct {
	ID         int64       `json:"content_id"`
	UserID     int64       `json:"user_id"`
	Type       ContentType `json:"type"`
	Title      string      `json:"title,omitempty"`
	InputText  string      `json:"input_text,omitempty"`
	OutputText string      `json:"output_text"`
	CreatedAt  time.Time   `json:"created_at"`
}

type ChatMessage struct {
	ID        int64     `json:"message_id"`
	UserID    int64     `json:"user_id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
