package assignment

import (
	"time"

	"github.com/google/uuid"

	util "github.com/prabhashaj/EdututorAI/internal/utils"
)

type Assignment struct {
	ID                  uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID              uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	NotificationMessage string    `gorm:"type:text" json:"notification_message"`
	AssignedAt          time.Time `gorm:"autoCreateTime" json:"assigned_at"`

	Students []StudentAssignment `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"students,omitempty"`
}

// StudentAssignment is the per-student row. Quiz title and topic are
// denormalized on purpose: the student dashboard lists assignments
// without loading the quizzes behind them.
type StudentAssignment struct {
	ID                  uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AssignmentID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"assignment_id"`
	StudentID           uuid.UUID           `gorm:"type:uuid;not null;index" json:"student_id"`
	QuizID              uuid.UUID           `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuizTitle           string              `gorm:"type:text;not null" json:"quiz_title"`
	QuizTopic           string              `gorm:"type:text;not null" json:"quiz_topic"`
	NotificationMessage string              `gorm:"type:text" json:"notification_message"`
	AssignedAt          time.Time           `gorm:"autoCreateTime" json:"assigned_at"`
	Completed           bool                `gorm:"not null;default:false" json:"completed"`
	CompletedAt         *util.LocalDateTime `gorm:"type:timestamp" json:"completed_at,omitempty"`
	Score               *float64            `json:"score,omitempty"`
}
