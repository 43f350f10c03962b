package classroom

import (
	"context"
	"errors"

	"github.com/prabhashaj/EdututorAI/internal/config"
	"github.com/prabhashaj/EdututorAI/internal/user"
)

var (
	ErrUserNotFound     = errors.New("user not found for classroom integration")
	ErrMissingToken     = errors.New("user has no google access token")
	ErrDecryptionFailed = errors.New("failed to decrypt user's google token")
)

type ClassroomService interface {
	SyncCourses(ctx context.Context, userID, accessToken string) ([]Course, error)
	Courses(ctx context.Context, userID, accessToken string) ([]Course, error)
	Students(ctx context.Context, userID, courseID, accessToken string) ([]Student, error)
	CourseWork(ctx context.Context, userID, courseID, accessToken string) ([]CourseWork, error)
}

type classroomService struct {
	provider Provider
	users    user.UserRepository
}

func NewService(provider Provider, users user.UserRepository) ClassroomService {
	return &classroomService{
		provider: provider,
		users:    users,
	}
}

// resolveToken prefers an explicit token from the request and falls
// back to the caller's stored (encrypted) Google token. The mock
// provider ignores the token entirely, so an empty result is only an
// error for the real provider.
func (s *classroomService) resolveToken(ctx context.Context, userID, accessToken string) (string, error) {
	if accessToken != "" {
		return accessToken, nil
	}

	log := config.WithContext(ctx)

	u, err := s.users.GetByID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to retrieve user for classroom client")
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}
	if u.EncryptedGoogleAccessToken == "" {
		return "", nil
	}

	token, err := config.Decrypt(u.EncryptedGoogleAccessToken)
	if err != nil {
		log.WithError(err).Error("Failed to decrypt access token")
		return "", ErrDecryptionFailed
	}
	return token, nil
}

// SyncCourses fetches the caller's courses and records the course ids
// on the user profile. Profile persistence is best effort.
func (s *classroomService) SyncCourses(ctx context.Context, userID, accessToken string) ([]Course, error) {
	log := config.WithContext(ctx)

	token, err := s.resolveToken(ctx, userID, accessToken)
	if err != nil {
		return nil, err
	}

	courses, err := s.provider.SyncCourses(ctx, token)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(userID)
	if err != nil || u == nil {
		log.WithError(err).Warn("Skipping course list persistence, user lookup failed")
		return courses, nil
	}

	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	u.Courses = ids
	if err := s.users.Update(u); err != nil {
		log.WithError(err).Warn("Failed to persist synced course list")
	}

	log.Infof("Synced %d courses for user %s", len(courses), userID)
	return courses, nil
}

func (s *classroomService) Courses(ctx context.Context, userID, accessToken string) ([]Course, error) {
	token, err := s.resolveToken(ctx, userID, accessToken)
	if err != nil {
		return nil, err
	}
	return s.provider.SyncCourses(ctx, token)
}

func (s *classroomService) Students(ctx context.Context, userID, courseID, accessToken string) ([]Student, error) {
	token, err := s.resolveToken(ctx, userID, accessToken)
	if err != nil {
		return nil, err
	}
	return s.provider.ListStudents(ctx, courseID, token)
}

func (s *classroomService) CourseWork(ctx context.Context, userID, courseID, accessToken string) ([]CourseWork, error) {
	token, err := s.resolveToken(ctx, userID, accessToken)
	if err != nil {
		return nil, err
	}
	return s.provider.ListCourseWork(ctx, courseID, token)
}
