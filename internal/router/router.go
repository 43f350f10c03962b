package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/prabhashaj/EdututorAI/internal/classroom"
	"github.com/prabhashaj/EdututorAI/internal/config"
	"github.com/prabhashaj/EdututorAI/internal/middlewares"
	"github.com/prabhashaj/EdututorAI/internal/quiz"
	"github.com/prabhashaj/EdututorAI/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	QuizHandler      *quiz.Handler
	ClassroomHandler *classroom.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"message": "EduTutor AI API is running"})
	})
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", user.Routes(cfg.UserHandler))
		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
		r.Mount("/classroom", classroom.Routes(cfg.ClassroomHandler))
	})

	return r
}
