package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/prabhashaj/EdututorAI/internal/config"
	"github.com/prabhashaj/EdututorAI/internal/quizgen"
	"github.com/prabhashaj/EdututorAI/internal/vectorindex"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrInvalidID    = errors.New("invalid id")
)

// AssignmentStore is the slice of the assignment module the quiz flow
// needs: completion marking on submit and per-quiz student counts for
// the educator history view.
type AssignmentStore interface {
	MarkCompleted(ctx context.Context, studentID, quizID uuid.UUID, score float64) error
	CountStudentsByQuiz(quizID uuid.UUID) (int64, error)
}

type QuizService interface {
	GenerateQuiz(ctx context.Context, req GenerateQuizRequest) (*QuizView, error)
	GetQuiz(ctx context.Context, id string) (*QuizView, error)
	ListQuizzes(ctx context.Context) ([]QuizView, error)
	Submit(ctx context.Context, userID string, req SubmitRequest) (*QuizResult, error)
	HistoryByUser(ctx context.Context, userID string) ([]HistoryItem, error)
	EducatorHistory(ctx context.Context) ([]EducatorHistoryItem, error)
}

type quizService struct {
	repo        QuizRepository
	generator   quizgen.Service
	assignments AssignmentStore
	index       vectorindex.Index
}

func NewService(repo QuizRepository, generator quizgen.Service, assignments AssignmentStore, index vectorindex.Index) QuizService {
	return &quizService{
		repo:        repo,
		generator:   generator,
		assignments: assignments,
		index:       index,
	}
}

// GenerateQuiz calls the model, parses its output into questions and
// persists the quiz. A model failure aborts the request without
// creating anything; parse degradation does not (the parser always
// yields at least one question).
func (s *quizService) GenerateQuiz(ctx context.Context, req GenerateQuizRequest) (*QuizView, error) {
	log := config.WithContext(ctx)
	log.Infof("Generating quiz for topic %q, difficulty %d, questions %d", req.Topic, req.Difficulty, req.NumQuestions)

	parsed, err := s.generator.GenerateQuestions(ctx, req.Topic, req.Difficulty, req.NumQuestions)
	if err != nil {
		return nil, err
	}

	q := &Quiz{
		ID:         uuid.New(),
		Title:      fmt.Sprintf("Quiz on %s", req.Topic),
		Topic:      req.Topic,
		Difficulty: clampDifficulty(req.Difficulty),
	}
	for i, p := range parsed {
		q.Questions = append(q.Questions, QuizQuestion{
			ID:            uuid.New(),
			QuizID:        q.ID,
			Text:          p.Text,
			Options:       p.Options,
			CorrectLetter: p.CorrectLetter,
			Explanation:   p.Explanation,
			OrderIndex:    i,
		})
	}

	if err := s.repo.Create(q); err != nil {
		log.WithError(err).Error("Failed to persist generated quiz")
		return nil, err
	}

	log.Infof("Created quiz %s with %d questions", q.ID, len(q.Questions))
	view := NewQuizView(q)
	return &view, nil
}

func (s *quizService) GetQuiz(ctx context.Context, id string) (*QuizView, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	q, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	view := NewQuizView(q)
	return &view, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]QuizView, error) {
	quizzes, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	views := make([]QuizView, 0, len(quizzes))
	for _, q := range quizzes {
		views = append(views, NewQuizView(q))
	}
	return views, nil
}

func (s *quizService) Submit(ctx context.Context, userID string, req SubmitRequest) (*QuizResult, error) {
	log := config.WithContext(ctx)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if _, err := uuid.Parse(req.QuizID); err != nil {
		return nil, ErrInvalidID
	}

	q, err := s.repo.GetByID(req.QuizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	if len(q.Questions) == 0 {
		// The parser guarantees at least one question per quiz; a
		// zero-question quiz means stored data was tampered with.
		log.Errorf("Quiz %s has no questions, grading as zero", q.ID)
	}

	graded := Grade(q.Questions, NormalizeAnswers(req.Answers))

	result := &QuizResult{
		ID:             uuid.New(),
		QuizID:         q.ID,
		UserID:         uid,
		Score:          graded.Score,
		TotalQuestions: graded.TotalQuestions,
		CorrectCount:   graded.CorrectCount,
		Feedback:       graded.Feedback,
	}
	if err := s.repo.CreateResult(result); err != nil {
		log.WithError(err).Error("Failed to store quiz result")
		return nil, err
	}

	if err := s.assignments.MarkCompleted(ctx, uid, q.ID, graded.Score); err != nil {
		log.WithError(err).Warn("Failed to mark assignment completed")
	}

	if err := s.index.RecordResult(ctx, vectorindex.ResultRecord{
		UserID:         uid.String(),
		QuizID:         q.ID.String(),
		Topic:          q.Topic,
		Difficulty:     q.Difficulty,
		Score:          graded.Score,
		TotalQuestions: graded.TotalQuestions,
		CorrectCount:   graded.CorrectCount,
		SubmittedAt:    result.SubmittedAt,
	}); err != nil {
		log.WithError(err).Warn("Failed to record result in the vector index")
	}

	log.Infof("Graded submission for quiz %s by user %s: %.1f%%", q.ID, uid, graded.Score)
	return result, nil
}

func (s *quizService) HistoryByUser(ctx context.Context, userID string) ([]HistoryItem, error) {
	log := config.WithContext(ctx)

	results, err := s.repo.ListResultsByUser(userID)
	if err != nil {
		return nil, err
	}

	quizzes := make(map[uuid.UUID]*Quiz)
	history := make([]HistoryItem, 0, len(results))
	for _, res := range results {
		q, ok := quizzes[res.QuizID]
		if !ok {
			q, err = s.repo.GetByID(res.QuizID.String())
			if err != nil {
				return nil, err
			}
			quizzes[res.QuizID] = q
		}
		if q == nil {
			continue
		}

		history = append(history, HistoryItem{
			QuizID:         res.QuizID,
			Topic:          q.Topic,
			Difficulty:     q.Difficulty,
			Score:          res.Score,
			TotalQuestions: res.TotalQuestions,
			CorrectCount:   res.CorrectCount,
			SubmittedAt:    res.SubmittedAt,
			Feedback:       res.Feedback,
		})
	}

	if len(history) == 0 {
		records, err := s.index.HistoryByLearner(ctx, userID)
		if err != nil {
			log.WithError(err).Warn("Vector index history lookup failed")
			return history, nil
		}
		for _, rec := range records {
			quizID, err := uuid.Parse(rec.QuizID)
			if err != nil {
				log.Warnf("Skipping indexed result with malformed quiz id %q", rec.QuizID)
				continue
			}
			history = append(history, HistoryItem{
				QuizID:         quizID,
				Topic:          rec.Topic,
				Difficulty:     rec.Difficulty,
				Score:          rec.Score,
				TotalQuestions: rec.TotalQuestions,
				CorrectCount:   rec.CorrectCount,
				SubmittedAt:    rec.SubmittedAt,
			})
		}
	}

	return history, nil
}

func (s *quizService) EducatorHistory(ctx context.Context) ([]EducatorHistoryItem, error) {
	log := config.WithContext(ctx)

	quizzes, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	items := make([]EducatorHistoryItem, 0, len(quizzes))
	for _, q := range quizzes {
		assigned, err := s.assignments.CountStudentsByQuiz(q.ID)
		if err != nil {
			log.WithError(err).Warnf("Failed to count assignments for quiz %s", q.ID)
		}

		status := "draft"
		if assigned > 0 {
			status = "assigned"
		}

		items = append(items, EducatorHistoryItem{
			ID:            q.ID,
			Title:         q.Title,
			Topic:         q.Topic,
			Difficulty:    q.Difficulty,
			CreatedAt:     q.CreatedAt,
			Status:        status,
			TotalAssigned: assigned,
		})
	}

	return items, nil
}

func clampDifficulty(d int) int {
	if d < 1 {
		return 1
	}
	if d > 5 {
		return 5
	}
	return d
}
