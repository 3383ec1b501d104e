package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"study-assistant/models"
)

// QuizOptionCount is the number of options every generated question must carry.
const QuizOptionCount = 4

// QuizService validates generated quizzes and keeps their results
type QuizService struct {
	repo   QuizRepository
	logger *slog.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(repo QuizRepository, logger *slog.Logger) *QuizService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizService{repo: repo, logger: logger}
}

// generatedQuestion mirrors one item of the AI response. Pointers tell a
// missing field apart from a zero value.
type generatedQuestion struct {
	QuestionText       *string  `json:"question_text"`
	Options            []string `json:"options"`
	CorrectOptionIndex *int     `json:"correct_option_index"`
	Explanation        *string  `json:"explanation"`
}

func (q generatedQuestion) valid() bool {
	return q.QuestionText != nil &&
		q.Explanation != nil &&
		len(q.Options) == QuizOptionCount &&
		q.CorrectOptionIndex != nil &&
		*q.CorrectOptionIndex >= 0 && *q.CorrectOptionIndex < QuizOptionCount
}

// ParseQuestions reads the JSON array an AI model returns for a quiz request.
// Malformed items are dropped; if none survive, ErrInvalidQuizPayload is returned.
func (qs *QuizService) ParseQuestions(payload []byte) ([]models.QuizQuestion, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(trimCodeFence(payload), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuizPayload, err)
	}

	questions := make([]models.QuizQuestion, 0, len(items))
	for i, raw := range items {
		var q generatedQuestion
		if err := json.Unmarshal(raw, &q); err != nil || !q.valid() {
			qs.logger.Debug("dropping invalid quiz question", "index", i)
			continue
		}
		questions = append(questions, models.QuizQuestion{
			QuestionText:       *q.QuestionText,
			Options:            q.Options,
			CorrectOptionIndex: *q.CorrectOptionIndex,
			Explanation:        *q.Explanation,
		})
	}

	if len(questions) == 0 {
		return nil, ErrInvalidQuizPayload
	}
	return questions, nil
}

// trimCodeFence strips a surrounding markdown code block, which models add
// even when asked for bare JSON.
func trimCodeFence(payload []byte) []byte {
	s := strings.TrimSpace(string(payload))
	if !strings.HasPrefix(s, "```") {
		return []byte(s)
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}

// RecordAttempt scores the answered questions and stores the attempt with a
// full snapshot for later review.
func (qs *QuizService) RecordAttempt(ctx context.Context, userID int64, topic string, questions []models.QuizQuestion) (*models.QuizAttempt, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}

	score := 0
	for _, q := range questions {
		if q.AnsweredCorrectly() {
			score++
		}
	}

	attempt := &models.QuizAttempt{
		UserID:         userID,
		Topic:          strings.TrimSpace(topic),
		Score:          score,
		TotalQuestions: len(questions),
	}
	if err := qs.repo.AddQuizAttempt(ctx, attempt, questions); err != nil {
		return nil, fmt.Errorf("failed to save quiz attempt: %w", err)
	}
	return attempt, nil
}

// History lists past attempts, newest first
func (qs *QuizService) History(ctx context.Context, userID int64) ([]models.QuizAttempt, error) {
	return qs.repo.ListQuizAttempts(ctx, userID)
}

// Review loads the question snapshot of one attempt
func (qs *QuizService) Review(ctx context.Context, userID, attemptID int64) (*models.QuizAttemptDetail, error) {
	detail, err := qs.repo.GetQuizAttemptDetails(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrNotFound
	}
	return detail, nil
}
