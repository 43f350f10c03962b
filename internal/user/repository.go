package user

import (
	"errors"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(u *User) error
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	Update(u *User) error
	ListByRole(role Role) ([]*User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *userRepository) GetByID(id string) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(email string) (*User, error) {
	var u User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Update(u *User) error {
	return r.db.Save(u).Error
}

func (r *userRepository) ListByRole(role Role) ([]*User, error) {
	var users []*User
	if err := r.db.Where("role = ?", role).Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
