package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestAttemptLifecycle(t *testing.T) {
	st := openTestStore(t)
	repo := st.AttemptRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAttemptStart(ctx, "a1", "ch3", 10))

	answers := []AnswerEventData{
		{AttemptID: "a1", Deck: "ch3", QuestionID: "q1", QuestionType: "MultipleChoice", Correct: true, TimeMs: 1200},
		{AttemptID: "a1", Deck: "ch3", QuestionID: "q2", QuestionType: "Tracing", Correct: false, TimeMs: 8000},
		{AttemptID: "a1", Deck: "ch3", QuestionID: "q3", QuestionType: "Tracing", Correct: true, TimeMs: 4100},
	}
	for _, a := range answers {
		require.NoError(t, repo.AppendAnswer(ctx, a))
	}

	require.NoError(t, repo.AppendAttemptEnd(ctx, "a1", 3, 2, 95))

	sums, err := repo.QueryAttemptSummaries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sums, 1)

	got := sums[0]
	assert.Equal(t, "a1", got.AttemptID)
	assert.Equal(t, 3, got.Answered)
	assert.Equal(t, 2, got.Correct)
	assert.True(t, got.Completed)
	assert.False(t, got.StartedAt.IsZero(), "StartedAt not parsed")
}

func TestAttemptAbandoned(t *testing.T) {
	st := openTestStore(t)
	repo := st.AttemptRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAttemptStart(ctx, "a1", "ch3", 10))

	sums, err := repo.QueryAttemptSummaries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.False(t, sums[0].Completed)
}

func TestQueryDeckAccuracy(t *testing.T) {
	st := openTestStore(t)
	repo := st.AttemptRepo()
	ctx := context.Background()

	events := []AnswerEventData{
		{AttemptID: "a1", Deck: "ch3", QuestionID: "q1", QuestionType: "MultipleChoice", Correct: true},
		{AttemptID: "a1", Deck: "ch3", QuestionID: "q2", QuestionType: "Tracing", Correct: false},
		{AttemptID: "a2", Deck: "ch5", QuestionID: "q1", QuestionType: "MultipleChoice", Correct: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendAnswer(ctx, e))
	}

	recs, err := repo.QueryDeckAccuracy(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "ch3", recs[0].Deck)
	assert.Equal(t, 2, recs[0].Answered)
	assert.Equal(t, 1, recs[0].Correct)
	assert.Equal(t, 0.5, recs[0].Accuracy())

	assert.Equal(t, "ch5", recs[1].Deck)
	assert.Equal(t, 1.0, recs[1].Accuracy())
}

func TestQueryMostMissed(t *testing.T) {
	st := openTestStore(t)
	repo := st.AttemptRepo()
	ctx := context.Background()

	// q2 missed twice, q1 missed once, q3 never missed.
	events := []AnswerEventData{
		{AttemptID: "a1", Deck: "ch3", QuestionID: "q1", QuestionType: "Tracing", Correct: false},
		{AttemptID: "a1", Deck: "ch3", QuestionID: "q2", QuestionType: "Tracing", Correct: false},
		{AttemptID: "a2", Deck: "ch3", QuestionID: "q2", QuestionType: "Tracing", Correct: false},
		{AttemptID: "a2", Deck: "ch3", QuestionID: "q1", QuestionType: "Tracing", Correct: true},
		{AttemptID: "a2", Deck: "ch3", QuestionID: "q3", QuestionType: "Tracing", Correct: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendAnswer(ctx, e))
	}

	recs, err := repo.QueryMostMissed(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2, "q3 has no misses")

	assert.Equal(t, "q2", recs[0].QuestionID)
	assert.Equal(t, 2, recs[0].Misses)
	assert.Equal(t, 2, recs[0].Attempts)

	assert.Equal(t, "q1", recs[1].QuestionID)
	assert.Equal(t, 1, recs[1].Misses)
	assert.Equal(t, 2, recs[1].Attempts)
}
