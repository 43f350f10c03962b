package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title      string    `gorm:"type:text;not null" json:"title"`
	Topic      string    `gorm:"type:text;not null" json:"topic"`
	Difficulty int       `gorm:"not null;default:1" json:"difficulty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type QuizQuestion struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID        uuid.UUID                   `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Text          string                      `gorm:"type:text;not null" json:"question"`
	Options       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"options"`
	CorrectLetter string                      `gorm:"type:text;not null" json:"correct_answer"`
	Explanation   string                      `gorm:"type:text" json:"explanation"`
	OrderIndex    int                         `gorm:"not null" json:"order_index"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}

type QuizResult struct {
	ID             uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID         uuid.UUID                   `gorm:"type:uuid;not null;index" json:"quiz_id"`
	UserID         uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	Score          float64                     `gorm:"not null" json:"score"`
	TotalQuestions int                         `gorm:"not null" json:"total_questions"`
	CorrectCount   int                         `gorm:"not null" json:"correct_count"`
	Feedback       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"feedback"`
	SubmittedAt    time.Time                   `gorm:"autoCreateTime" json:"submitted_at"`
}
