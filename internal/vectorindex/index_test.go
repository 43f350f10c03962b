package vectorindex_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhashaj/EdututorAI/internal/vectorindex"
)

func TestEmbed(t *testing.T) {
	a := vectorindex.Embed("Photosynthesis difficulty_3")
	b := vectorindex.Embed("Photosynthesis difficulty_3")
	c := vectorindex.Embed("Algebra difficulty_1")

	require.Len(t, a, vectorindex.Dimension)
	assert.Equal(t, a, b, "embedding must be deterministic")
	assert.NotEqual(t, a, c)

	for _, v := range a {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestHistoryByLearner(t *testing.T) {
	ctx := context.Background()
	idx := vectorindex.NewMemoryIndex()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, topic := range []string{"Algebra", "Geometry", "Calculus"} {
		require.NoError(t, idx.RecordResult(ctx, vectorindex.ResultRecord{
			UserID:      "student-1",
			Topic:       topic,
			Score:       float64(60 + i*10),
			SubmittedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, idx.RecordResult(ctx, vectorindex.ResultRecord{
		UserID:      "student-2",
		Topic:       "History",
		Score:       90,
		SubmittedAt: base,
	}))

	history, err := idx.HistoryByLearner(ctx, "student-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "Calculus", history[0].Topic, "newest result first")
	assert.Equal(t, "Algebra", history[2].Topic)

	empty, err := idx.HistoryByLearner(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStudentsOverview(t *testing.T) {
	ctx := context.Background()
	idx := vectorindex.NewMemoryIndex()

	require.NoError(t, idx.UpsertProfile(ctx, vectorindex.Profile{
		UserID: "student-1", Name: "Alice Johnson", Email: "alice@edututor.ai", Role: "student",
	}))
	require.NoError(t, idx.UpsertProfile(ctx, vectorindex.Profile{
		UserID: "educator-1", Name: "Educator User", Email: "educator@edututor.ai", Role: "educator",
	}))

	require.NoError(t, idx.RecordResult(ctx, vectorindex.ResultRecord{UserID: "student-1", Topic: "Algebra", Score: 50}))
	require.NoError(t, idx.RecordResult(ctx, vectorindex.ResultRecord{UserID: "student-1", Topic: "Algebra", Score: 100}))

	overviews, err := idx.StudentsOverview(ctx)
	require.NoError(t, err)
	require.Len(t, overviews, 1, "educators are not part of the overview")

	assert.Equal(t, "Alice Johnson", overviews[0].Name)
	assert.Equal(t, 2, overviews[0].TotalQuizzes)
	assert.InDelta(t, 75.0, overviews[0].AverageScore, 0.001)
}
