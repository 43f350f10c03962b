package classroom

import (
	"context"

	"golang.org/x/oauth2"
	gclassroom "google.golang.org/api/classroom/v1"
	"google.golang.org/api/option"

	"github.com/prabhashaj/EdututorAI/internal/config"
)

// googleProvider talks to the real Classroom API. It is deliberately
// thin: token refresh happens through the oauth2 TokenSource, and
// refreshed tokens are not persisted back.
type googleProvider struct {
	oauthConfig *oauth2.Config
}

func NewGoogleProvider(oauthConfig *oauth2.Config) Provider {
	return &googleProvider{oauthConfig: oauthConfig}
}

func (p *googleProvider) classroomClient(ctx context.Context, accessToken string) (*gclassroom.Service, error) {
	log := config.WithContext(ctx)

	token := &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}
	tokenSource := p.oauthConfig.TokenSource(ctx, token)

	client := oauth2.NewClient(ctx, tokenSource)
	srv, err := gclassroom.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.WithError(err).Error("Failed to create Classroom service client")
		return nil, err
	}

	return srv, nil
}

func (p *googleProvider) SyncCourses(ctx context.Context, accessToken string) ([]Course, error) {
	log := config.WithContext(ctx)
	srv, err := p.classroomClient(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Courses.List().CourseStates("ACTIVE").Context(ctx).Do()
	if err != nil {
		log.WithError(err).Error("Failed to list classroom courses")
		return nil, err
	}

	courses := make([]Course, 0, len(resp.Courses))
	for _, c := range resp.Courses {
		courses = append(courses, Course{
			ID:             c.Id,
			Name:           c.Name,
			Description:    c.Description,
			EnrollmentCode: c.EnrollmentCode,
			CourseState:    c.CourseState,
			CreationTime:   c.CreationTime,
		})
	}
	return courses, nil
}

func (p *googleProvider) ListStudents(ctx context.Context, courseID, accessToken string) ([]Student, error) {
	log := config.WithContext(ctx)
	srv, err := p.classroomClient(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Courses.Students.List(courseID).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Errorf("Failed to list students for course %s", courseID)
		return nil, err
	}

	students := make([]Student, 0, len(resp.Students))
	for _, s := range resp.Students {
		student := Student{UserID: s.UserId}
		if s.Profile != nil {
			student.Profile.EmailAddress = s.Profile.EmailAddress
			if s.Profile.Name != nil {
				student.Profile.Name.FullName = s.Profile.Name.FullName
			}
		}
		students = append(students, student)
	}
	return students, nil
}

func (p *googleProvider) ListCourseWork(ctx context.Context, courseID, accessToken string) ([]CourseWork, error) {
	log := config.WithContext(ctx)
	srv, err := p.classroomClient(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Courses.CourseWork.List(courseID).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Errorf("Failed to list course work for course %s", courseID)
		return nil, err
	}

	works := make([]CourseWork, 0, len(resp.CourseWork))
	for _, w := range resp.CourseWork {
		works = append(works, CourseWork{
			ID:           w.Id,
			Title:        w.Title,
			Description:  w.Description,
			State:        w.State,
			CreationTime: w.CreationTime,
		})
	}
	return works, nil
}
