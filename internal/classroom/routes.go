package classroom

import (
	"github.com/go-chi/chi/v5"

	"github.com/prabhashaj/EdututorAI/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Post("/sync", h.Sync)
	r.Get("/courses", h.Courses)
	r.Get("/courses/{id}/students", h.Students)
	r.Get("/courses/{id}/coursework", h.CourseWork)

	return r
}
