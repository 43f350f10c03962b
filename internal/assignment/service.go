package assignment

import (
	"context"

	"github.com/google/uuid"

	"github.com/prabhashaj/EdututorAI/internal/config"
	util "github.com/prabhashaj/EdututorAI/internal/utils"
)

type Summary struct {
	ID                  uuid.UUID `json:"id"`
	QuizID              uuid.UUID `json:"quiz_id"`
	Title               string    `json:"title"`
	Topic               string    `json:"topic"`
	AssignedDate        string    `json:"assigned_date"`
	Students            int       `json:"students"`
	NotificationMessage string    `json:"notification_message"`
}

// Service is the assignment store: one instance per process, built by
// the container and handed to whoever needs it. Assignment bookkeeping
// lives here and nowhere else.
type Service interface {
	Assign(ctx context.Context, quizID uuid.UUID, quizTitle, quizTopic string, studentIDs []uuid.UUID, message string) (*Assignment, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]StudentAssignment, error)
	ListAll(ctx context.Context) ([]Summary, error)
	CountStudentsByQuiz(quizID uuid.UUID) (int64, error)
	MarkCompleted(ctx context.Context, studentID, quizID uuid.UUID, score float64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Assign(ctx context.Context, quizID uuid.UUID, quizTitle, quizTopic string, studentIDs []uuid.UUID, message string) (*Assignment, error) {
	log := config.WithContext(ctx)

	a := &Assignment{
		ID:                  uuid.New(),
		QuizID:              quizID,
		NotificationMessage: message,
	}
	for _, studentID := range studentIDs {
		a.Students = append(a.Students, StudentAssignment{
			ID:                  uuid.New(),
			AssignmentID:        a.ID,
			StudentID:           studentID,
			QuizID:              quizID,
			QuizTitle:           quizTitle,
			QuizTopic:           quizTopic,
			NotificationMessage: message,
		})
	}

	if err := s.repo.Create(a); err != nil {
		log.WithError(err).Error("Failed to create assignment")
		return nil, err
	}

	log.Infof("Assigned quiz %s to %d students", quizID, len(studentIDs))
	return a, nil
}

func (s *service) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]StudentAssignment, error) {
	return s.repo.ListByStudent(studentID)
}

func (s *service) ListAll(ctx context.Context) ([]Summary, error) {
	assignments, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(assignments))
	for _, a := range assignments {
		title, topic := "", ""
		if len(a.Students) > 0 {
			title = a.Students[0].QuizTitle
			topic = a.Students[0].QuizTopic
		}
		summaries = append(summaries, Summary{
			ID:                  a.ID,
			QuizID:              a.QuizID,
			Title:               title,
			Topic:               topic,
			AssignedDate:        a.AssignedAt.Format("2006-01-02"),
			Students:            len(a.Students),
			NotificationMessage: a.NotificationMessage,
		})
	}
	return summaries, nil
}

func (s *service) CountStudentsByQuiz(quizID uuid.UUID) (int64, error) {
	return s.repo.CountStudentsByQuiz(quizID)
}

func (s *service) MarkCompleted(ctx context.Context, studentID, quizID uuid.UUID, score float64) error {
	return s.repo.MarkCompleted(studentID, quizID, score, util.Now())
}
