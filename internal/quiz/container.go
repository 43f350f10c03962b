package quiz

import (
	"gorm.io/gorm"

	"github.com/prabhashaj/EdututorAI/internal/analytics"
	"github.com/prabhashaj/EdututorAI/internal/assignment"
	"github.com/prabhashaj/EdututorAI/internal/quizgen"
	"github.com/prabhashaj/EdututorAI/internal/vectorindex"
)

type QuizContainer struct {
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(
	db *gorm.DB,
	generator quizgen.Service,
	assignments assignment.Service,
	index vectorindex.Index,
	analyticsService analytics.Service,
) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, generator, assignments, index)
	handler := NewHandler(service, assignments, analyticsService)

	return &QuizContainer{
		Service: service,
		Handler: handler,
	}
}
