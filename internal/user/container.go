package user

import (
	"github.com/prabhashaj/EdututorAI/internal/vectorindex"
	"gorm.io/gorm"
)

type UserContainer struct {
	Repo    UserRepository
	Service UserService
	Handler *Handler
}

func NewUserContainer(db *gorm.DB, index vectorindex.Index) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, index)
	handler := NewHandler(service)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
