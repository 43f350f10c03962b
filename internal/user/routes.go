package user

import (
	"github.com/go-chi/chi/v5"

	"github.com/prabhashaj/EdututorAI/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/token", h.Token)
	r.Post("/google", h.GoogleLogin)
	r.Post("/demo-users", h.CreateDemoUsers)
	r.Post("/logout", auth.NewHandler().Logout)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/me", h.GetUser)
		r.Post("/refresh", h.RefreshToken)
	})

	return r
}
