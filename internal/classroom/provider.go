package classroom

import (
	"context"
	"fmt"
)

// Provider fetches classroom data with an already-resolved access
// token. The service layer decides where that token comes from.
type Provider interface {
	SyncCourses(ctx context.Context, accessToken string) ([]Course, error)
	ListStudents(ctx context.Context, courseID, accessToken string) ([]Student, error)
	ListCourseWork(ctx context.Context, courseID, accessToken string) ([]CourseWork, error)
}

// mockProvider returns canned data and ignores the token. It is the
// default so the API works end to end without Google credentials.
type mockProvider struct{}

func NewMockProvider() Provider {
	return &mockProvider{}
}

func (p *mockProvider) SyncCourses(ctx context.Context, accessToken string) ([]Course, error) {
	return []Course{
		{
			ID:             "course_1",
			Name:           "Introduction to Python",
			Description:    "Learn Python programming basics",
			EnrollmentCode: "ABC123",
			CourseState:    "ACTIVE",
			CreationTime:   "2024-01-15T10:00:00Z",
		},
		{
			ID:             "course_2",
			Name:           "Data Science Fundamentals",
			Description:    "Introduction to data science concepts",
			EnrollmentCode: "DEF456",
			CourseState:    "ACTIVE",
			CreationTime:   "2024-02-01T10:00:00Z",
		},
		{
			ID:             "course_3",
			Name:           "Web Development",
			Description:    "Build modern web applications",
			EnrollmentCode: "GHI789",
			CourseState:    "ACTIVE",
			CreationTime:   "2024-02-15T10:00:00Z",
		},
	}, nil
}

func (p *mockProvider) ListStudents(ctx context.Context, courseID, accessToken string) ([]Student, error) {
	return []Student{
		{
			UserID: fmt.Sprintf("student_%s_1", courseID),
			Profile: StudentProfile{
				Name:         StudentName{FullName: "Alice Johnson"},
				EmailAddress: "alice@example.com",
			},
		},
		{
			UserID: fmt.Sprintf("student_%s_2", courseID),
			Profile: StudentProfile{
				Name:         StudentName{FullName: "Bob Smith"},
				EmailAddress: "bob@example.com",
			},
		},
	}, nil
}

func (p *mockProvider) ListCourseWork(ctx context.Context, courseID, accessToken string) ([]CourseWork, error) {
	return []CourseWork{
		{
			ID:           fmt.Sprintf("work_%s_1", courseID),
			Title:        "Assignment 1",
			Description:  "Complete the first assignment",
			State:        "PUBLISHED",
			CreationTime: "2024-03-01T10:00:00Z",
		},
		{
			ID:           fmt.Sprintf("work_%s_2", courseID),
			Title:        "Quiz 1",
			Description:  "Take the first quiz",
			State:        "PUBLISHED",
			CreationTime: "2024-03-05T10:00:00Z",
		},
	}, nil
}
