package quiz

import (
	"time"

	"github.com/google/uuid"
)

type GenerateQuizRequest struct {
	Topic        string `json:"topic"`
	Difficulty   int    `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

type SubmitRequest struct {
	QuizID  string            `json:"quiz_id"`
	Answers map[string]string `json:"answers"`
}

type AssignRequest struct {
	QuizID              string   `json:"quiz_id"`
	StudentIDs          []string `json:"student_ids"`
	NotificationMessage string   `json:"notification_message"`
}

// QuestionView is the learner-facing shape of a question. It has no
// correct-answer or explanation fields at all, so redaction cannot be
// forgotten at a serialization site.
type QuestionView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizView struct {
	ID         uuid.UUID      `json:"id"`
	Title      string         `json:"title"`
	Topic      string         `json:"topic"`
	Difficulty int            `json:"difficulty"`
	CreatedAt  time.Time      `json:"created_at"`
	Questions  []QuestionView `json:"questions"`
}

func NewQuizView(q *Quiz) QuizView {
	questions := make([]QuestionView, 0, len(q.Questions))
	for _, question := range q.Questions {
		questions = append(questions, QuestionView{
			Question: question.Text,
			Options:  question.Options,
		})
	}
	return QuizView{
		ID:         q.ID,
		Title:      q.Title,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		CreatedAt:  q.CreatedAt,
		Questions:  questions,
	}
}

type HistoryItem struct {
	QuizID         uuid.UUID `json:"quiz_id"`
	Topic          string    `json:"topic"`
	Difficulty     int       `json:"difficulty"`
	Score          float64   `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectCount   int       `json:"correct_count"`
	SubmittedAt    time.Time `json:"submitted_at"`
	Feedback       []string  `json:"feedback,omitempty"`
}

type EducatorHistoryItem struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Difficulty    int       `json:"difficulty"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
	TotalAssigned int64     `json:"total_assigned"`
}
