package assignment

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	util "github.com/prabhashaj/EdututorAI/internal/utils"
)

type Repository interface {
	Create(a *Assignment) error
	ListByStudent(studentID uuid.UUID) ([]StudentAssignment, error)
	ListAll() ([]Assignment, error)
	CountStudentsByQuiz(quizID uuid.UUID) (int64, error)
	MarkCompleted(studentID, quizID uuid.UUID, score float64, at util.LocalDateTime) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(a *Assignment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(a).Error
	})
}

func (r *repository) ListByStudent(studentID uuid.UUID) ([]StudentAssignment, error) {
	var rows []StudentAssignment
	err := r.db.
		Where("student_id = ?", studentID).
		Order("assigned_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListAll() ([]Assignment, error) {
	var rows []Assignment
	err := r.db.
		Preload("Students").
		Order("assigned_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CountStudentsByQuiz(quizID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&StudentAssignment{}).
		Where("quiz_id = ?", quizID).
		Count(&count).Error
	return count, err
}

func (r *repository) MarkCompleted(studentID, quizID uuid.UUID, score float64, at util.LocalDateTime) error {
	return r.db.Model(&StudentAssignment{}).
		Where("student_id = ? AND quiz_id = ? AND completed = false", studentID, quizID).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": at,
			"score":        score,
		}).Error
}
