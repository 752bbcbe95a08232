package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AnswerEventData captures one graded answer for the history log. The
// question id is the stable identifier from the deck; it is used for
// analytics only and never feeds back into grading.
type AnswerEventData struct {
	AttemptID    string
	Deck         string
	QuestionID   string
	QuestionType string
	Correct      bool
	TimeMs       int
}

// AttemptSummaryRecord is one row of the attempt history.
type AttemptSummaryRecord struct {
	AttemptID    string
	Deck         string
	Questions    int
	Answered     int
	Correct      int
	DurationSecs int
	StartedAt    time.Time
	Completed    bool
}

// DeckAccuracyRecord aggregates answer events per deck.
type DeckAccuracyRecord struct {
	Deck     string
	Answered int
	Correct  int
}

// Accuracy returns the fraction of correct answers (0 when none recorded).
func (r DeckAccuracyRecord) Accuracy() float64 {
	if r.Answered == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Answered)
}

// MissedQuestionRecord counts wrong answers per question across attempts.
type MissedQuestionRecord struct {
	Deck       string
	QuestionID string
	Misses     int
	Attempts   int
}

// AttemptRepo records quiz attempts and serves history queries.
type AttemptRepo interface {
	// AppendAttemptStart records the beginning of an attempt.
	AppendAttemptStart(ctx context.Context, attemptID, deck string, questions int) error

	// AppendAttemptEnd finalizes an attempt with its totals.
	AppendAttemptEnd(ctx context.Context, attemptID string, answered, correct, durationSecs int) error

	// AppendAnswer records one graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QueryAttemptSummaries returns the most recent attempts, newest first.
	QueryAttemptSummaries(ctx context.Context, limit int) ([]AttemptSummaryRecord, error)

	// QueryDeckAccuracy aggregates per-deck accuracy across all attempts.
	QueryDeckAccuracy(ctx context.Context) ([]DeckAccuracyRecord, error)

	// QueryMostMissed returns the questions missed most often, capped at limit.
	QueryMostMissed(ctx context.Context, limit int) ([]MissedQuestionRecord, error)
}

type attemptRepo struct {
	db *sql.DB
}

var _ AttemptRepo = (*attemptRepo)(nil)

// Timestamps are stored as RFC 3339 UTC text so rows stay readable in the
// sqlite shell and scanning is driver-independent.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (r *attemptRepo) AppendAttemptStart(ctx context.Context, attemptID, deck string, questions int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (attempt_id, deck, questions, started_at) VALUES (?, ?, ?, ?)`,
		attemptID, deck, questions, now(),
	)
	if err != nil {
		return fmt.Errorf("append attempt start: %w", err)
	}
	return nil
}

func (r *attemptRepo) AppendAttemptEnd(ctx context.Context, attemptID string, answered, correct, durationSecs int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE attempts SET answered = ?, correct = ?, duration_secs = ?, ended_at = ? WHERE attempt_id = ?`,
		answered, correct, durationSecs, now(), attemptID,
	)
	if err != nil {
		return fmt.Errorf("append attempt end: %w", err)
	}
	return nil
}

func (r *attemptRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	correct := 0
	if data.Correct {
		correct = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answer_events (attempt_id, deck, question_id, question_type, correct, time_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.AttemptID, data.Deck, data.QuestionID, data.QuestionType, correct, data.TimeMs, now(),
	)
	if err != nil {
		return fmt.Errorf("append answer: %w", err)
	}
	return nil
}

func (r *attemptRepo) QueryAttemptSummaries(ctx context.Context, limit int) ([]AttemptSummaryRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT attempt_id, deck, questions, answered, correct, duration_secs, started_at, ended_at
		 FROM attempts ORDER BY started_at DESC, attempt_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptSummaryRecord
	for rows.Next() {
		var rec AttemptSummaryRecord
		var started string
		var ended sql.NullString
		if err := rows.Scan(&rec.AttemptID, &rec.Deck, &rec.Questions, &rec.Answered,
			&rec.Correct, &rec.DurationSecs, &started, &ended); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, started); err == nil {
			rec.StartedAt = t
		}
		rec.Completed = ended.Valid
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *attemptRepo) QueryDeckAccuracy(ctx context.Context) ([]DeckAccuracyRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT deck, COUNT(*), COALESCE(SUM(correct), 0)
		 FROM answer_events GROUP BY deck ORDER BY deck`)
	if err != nil {
		return nil, fmt.Errorf("query deck accuracy: %w", err)
	}
	defer rows.Close()

	var out []DeckAccuracyRecord
	for rows.Next() {
		var rec DeckAccuracyRecord
		if err := rows.Scan(&rec.Deck, &rec.Answered, &rec.Correct); err != nil {
			return nil, fmt.Errorf("scan deck accuracy: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *attemptRepo) QueryMostMissed(ctx context.Context, limit int) ([]MissedQuestionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT deck, question_id, COUNT(*) - COALESCE(SUM(correct), 0) AS misses, COUNT(*)
		 FROM answer_events
		 GROUP BY deck, question_id
		 HAVING misses > 0
		 ORDER BY misses DESC, deck, question_id
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query most missed: %w", err)
	}
	defer rows.Close()

	var out []MissedQuestionRecord
	for rows.Next() {
		var rec MissedQuestionRecord
		if err := rows.Scan(&rec.Deck, &rec.QuestionID, &rec.Misses, &rec.Attempts); err != nil {
			return nil, fmt.Errorf("scan most missed: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
