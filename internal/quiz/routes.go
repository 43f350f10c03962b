package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prabhashaj/EdututorAI/internal/auth"
	"github.com/prabhashaj/EdututorAI/internal/user"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	educator := auth.RequireRole(string(user.RoleEducator))

	r.With(educator).Post("/generate", h.GenerateQuiz)
	r.With(educator).Post("/assign", h.AssignQuiz)
	r.With(educator).Get("/assignments", h.ListAssignments)
	r.With(educator).Get("/history", h.EducatorHistory)
	r.With(educator).Get("/analytics/students", h.StudentsAnalytics)

	r.Post("/submit", h.SubmitQuiz)
	r.Get("/list", h.ListQuizzes)
	r.Get("/history/{userID}", h.UserHistory)
	r.Get("/assignments/{studentID}", h.StudentAssignments)
	r.Get("/analytics/me", h.MyAnalytics)
	r.Get("/{id}", h.GetQuiz)

	return r
}
