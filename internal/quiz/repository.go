package quiz

import (
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	GetByID(id string) (*Quiz, error)
	List() ([]*Quiz, error)

	CreateResult(res *QuizResult) error
	ListResultsByUser(userID string) ([]*QuizResult, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// Create persists the quiz together with its questions in one
// transaction; a failed question insert leaves no orphaned quiz row.
func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(q).Error
	})
}

func (r *quizRepository) GetByID(id string) (*Quiz, error) {
	var quiz Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) List() ([]*Quiz, error) {
	var quizzes []*Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) CreateResult(res *QuizResult) error {
	return r.db.Create(res).Error
}

func (r *quizRepository) ListResultsByUser(userID string) ([]*QuizResult, error) {
	var results []*QuizResult
	err := r.db.
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
