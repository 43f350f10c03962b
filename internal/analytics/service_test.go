package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhashaj/EdututorAI/internal/analytics"
	"github.com/prabhashaj/EdututorAI/internal/vectorindex"
)

func TestStudentMetrics(t *testing.T) {
	svc := analytics.NewService(vectorindex.NewMemoryIndex())

	t.Run("Empty", func(t *testing.T) {
		m := svc.StudentMetrics(nil)
		assert.Equal(t, 0, m.TotalQuizzes)
		assert.Equal(t, 0.0, m.AverageScore)
		assert.Empty(t, m.TopicAverages)
	})

	t.Run("Aggregates", func(t *testing.T) {
		m := svc.StudentMetrics([]analytics.QuizOutcome{
			{Topic: "Algebra", Difficulty: 1, Score: 50},
			{Topic: "Algebra", Difficulty: 2, Score: 100},
			{Topic: "Geometry", Difficulty: 2, Score: 80},
		})

		assert.Equal(t, 3, m.TotalQuizzes)
		assert.InDelta(t, 76.667, m.AverageScore, 0.001)
		assert.Equal(t, 100.0, m.BestScore)
		assert.Equal(t, 2, m.TopicsCovered)
		assert.InDelta(t, 75.0, m.TopicAverages["Algebra"], 0.001)
		assert.InDelta(t, 80.0, m.TopicAverages["Geometry"], 0.001)
		assert.InDelta(t, 50.0, m.DifficultyAverages[1], 0.001)
		assert.InDelta(t, 90.0, m.DifficultyAverages[2], 0.001)
	})
}

func TestStudentsOverview(t *testing.T) {
	ctx := context.Background()
	idx := vectorindex.NewMemoryIndex()
	svc := analytics.NewService(idx)

	require.NoError(t, idx.UpsertProfile(ctx, vectorindex.Profile{UserID: "s1", Name: "Alice Johnson", Role: "student"}))
	require.NoError(t, idx.UpsertProfile(ctx, vectorindex.Profile{UserID: "s2", Name: "Bob Smith", Role: "student"}))
	require.NoError(t, idx.UpsertProfile(ctx, vectorindex.Profile{UserID: "s3", Name: "Carol Williams", Role: "student"}))

	require.NoError(t, idx.RecordResult(ctx, vectorindex.ResultRecord{UserID: "s1", Topic: "Algebra", Score: 60}))
	require.NoError(t, idx.RecordResult(ctx, vectorindex.ResultRecord{UserID: "s2", Topic: "Algebra", Score: 90}))

	overview, err := svc.StudentsOverview(ctx)
	require.NoError(t, err)

	assert.Len(t, overview.Students, 3)
	assert.Equal(t, 2, overview.ActiveStudents, "students without results are not active")
	assert.InDelta(t, 75.0, overview.ClassAverage, 0.001)
	assert.Equal(t, "Bob Smith", overview.Students[0].Name, "ranked by average score")
}
