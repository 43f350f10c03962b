package assignment_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhashaj/EdututorAI/internal/assignment"
	util "github.com/prabhashaj/EdututorAI/internal/utils"
)

type fakeAssignmentRepo struct {
	assignments []*assignment.Assignment
}

func (f *fakeAssignmentRepo) Create(a *assignment.Assignment) error {
	f.assignments = append(f.assignments, a)
	return nil
}

func (f *fakeAssignmentRepo) ListByStudent(studentID uuid.UUID) ([]assignment.StudentAssignment, error) {
	var rows []assignment.StudentAssignment
	for _, a := range f.assignments {
		for _, s := range a.Students {
			if s.StudentID == studentID {
				rows = append(rows, s)
			}
		}
	}
	return rows, nil
}

func (f *fakeAssignmentRepo) ListAll() ([]assignment.Assignment, error) {
	var rows []assignment.Assignment
	for _, a := range f.assignments {
		rows = append(rows, *a)
	}
	return rows, nil
}

func (f *fakeAssignmentRepo) CountStudentsByQuiz(quizID uuid.UUID) (int64, error) {
	var count int64
	for _, a := range f.assignments {
		for _, s := range a.Students {
			if s.QuizID == quizID {
				count++
			}
		}
	}
	return count, nil
}

func (f *fakeAssignmentRepo) MarkCompleted(studentID, quizID uuid.UUID, score float64, at util.LocalDateTime) error {
	for _, a := range f.assignments {
		for i := range a.Students {
			s := &a.Students[i]
			if s.StudentID == studentID && s.QuizID == quizID && !s.Completed {
				s.Completed = true
				s.CompletedAt = &at
				s.Score = &score
			}
		}
	}
	return nil
}

func TestAssignmentLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAssignmentRepo{}
	svc := assignment.NewService(repo)

	quizID := uuid.New()
	students := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	created, err := svc.Assign(ctx, quizID, "Quiz on Algebra", "Algebra", students, "Due Friday")
	require.NoError(t, err)
	require.Len(t, created.Students, 3)

	t.Run("StudentSeesAssignment", func(t *testing.T) {
		rows, err := svc.ListByStudent(ctx, students[0])
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Quiz on Algebra", rows[0].QuizTitle)
		assert.Equal(t, "Algebra", rows[0].QuizTopic)
		assert.False(t, rows[0].Completed)
	})

	t.Run("CountByQuiz", func(t *testing.T) {
		count, err := svc.CountStudentsByQuiz(quizID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		none, err := svc.CountStudentsByQuiz(uuid.New())
		require.NoError(t, err)
		assert.Equal(t, int64(0), none)
	})

	t.Run("Summaries", func(t *testing.T) {
		summaries, err := svc.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, 3, summaries[0].Students)
		assert.Equal(t, "Quiz on Algebra", summaries[0].Title)
		assert.Equal(t, "Due Friday", summaries[0].NotificationMessage)
	})

	t.Run("MarkCompleted", func(t *testing.T) {
		require.NoError(t, svc.MarkCompleted(ctx, students[1], quizID, 75.0))

		rows, err := svc.ListByStudent(ctx, students[1])
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Completed)
		require.NotNil(t, rows[0].Score)
		assert.Equal(t, 75.0, *rows[0].Score)
		assert.NotNil(t, rows[0].CompletedAt)

		// Other students stay untouched.
		other, err := svc.ListByStudent(ctx, students[0])
		require.NoError(t, err)
		assert.False(t, other[0].Completed)
	})
}
