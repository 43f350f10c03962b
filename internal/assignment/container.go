package assignment

import "gorm.io/gorm"

type AssignmentContainer struct {
	Repo    Repository
	Service Service
}

func NewAssignmentContainer(db *gorm.DB) *AssignmentContainer {
	repo := NewRepository(db)
	service := NewService(repo)

	return &AssignmentContainer{
		Repo:    repo,
		Service: service,
	}
}
