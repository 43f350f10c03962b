package container

import (
	"context"
	"log"
	"os"

	"github.com/prabhashaj/EdututorAI/internal/analytics"
	"github.com/prabhashaj/EdututorAI/internal/assignment"
	"github.com/prabhashaj/EdututorAI/internal/auth"
	"github.com/prabhashaj/EdututorAI/internal/classroom"
	"github.com/prabhashaj/EdututorAI/internal/config"
	"github.com/prabhashaj/EdututorAI/internal/quiz"
	"github.com/prabhashaj/EdututorAI/internal/quizgen"
	"github.com/prabhashaj/EdututorAI/internal/user"
	"github.com/prabhashaj/EdututorAI/internal/vectorindex"
)

type Container struct {
	UserContainer       *user.UserContainer
	QuizContainer       *quiz.QuizContainer
	AssignmentContainer *assignment.AssignmentContainer
	ClassroomContainer  *classroom.ClassroomContainer
	AnalyticsService    analytics.Service
	VectorIndex         vectorindex.Index
}

func New() *Container {
	ctx := context.Background()

	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := config.DB.AutoMigrate(
			&user.User{},
			&quiz.Quiz{},
			&quiz.QuizQuestion{},
			&quiz.QuizResult{},
			&assignment.Assignment{},
			&assignment.StudentAssignment{},
		); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	index := vectorindex.NewMemoryIndex()

	userContainer := user.NewUserContainer(config.DB, index)

	provider, err := quizgen.NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to initialize Gemini provider: %v", err)
	}
	generator := quizgen.NewService(provider)

	assignmentContainer := assignment.NewAssignmentContainer(config.DB)
	analyticsService := analytics.NewService(index)

	quizContainer := quiz.NewQuizContainer(
		config.DB,
		generator,
		assignmentContainer.Service,
		index,
		analyticsService,
	)

	classroomContainer := classroom.NewClassroomContainer(userContainer.Repo)

	if os.Getenv("SEED_DEMO_USERS") == "true" {
		if err := userContainer.Service.SeedDemoUsers(ctx); err != nil {
			log.Printf("failed to seed demo users: %v", err)
		}
	}

	return &Container{
		UserContainer:       userContainer,
		QuizContainer:       quizContainer,
		AssignmentContainer: assignmentContainer,
		ClassroomContainer:  classroomContainer,
		AnalyticsService:    analyticsService,
		VectorIndex:         index,
	}
}
