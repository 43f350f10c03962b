package classroom

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prabhashaj/EdututorAI/internal/auth"
	"github.com/prabhashaj/EdututorAI/internal/config"
)

type Handler struct {
	service ClassroomService
}

func NewHandler(s ClassroomService) *Handler {
	return &Handler{service: s}
}

type syncRequest struct {
	AccessToken string `json:"access_token"`
}

func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req syncRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	courses, err := h.service.SyncCourses(r.Context(), claims.UserID, req.AccessToken)
	if err != nil {
		h.writeError(w, r, err, "Failed to sync classroom courses")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Courses synced successfully",
		"courses": courses,
	})

	log.Infof("Classroom sync completed for user %s", claims.UserID)
}

func (h *Handler) Courses(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	courses, err := h.service.Courses(r.Context(), claims.UserID, r.URL.Query().Get("access_token"))
	if err != nil {
		h.writeError(w, r, err, "Failed to list classroom courses")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

func (h *Handler) Students(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	courseID := chi.URLParam(r, "id")
	students, err := h.service.Students(r.Context(), claims.UserID, courseID, r.URL.Query().Get("access_token"))
	if err != nil {
		h.writeError(w, r, err, "Failed to list course students")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"students": students})
}

func (h *Handler) CourseWork(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	courseID := chi.URLParam(r, "id")
	works, err := h.service.CourseWork(r.Context(), claims.UserID, courseID, r.URL.Query().Get("access_token"))
	if err != nil {
		h.writeError(w, r, err, "Failed to list course work")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"coursework": works})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := config.WithContext(r.Context())

	switch {
	case errors.Is(err, ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, ErrMissingToken), errors.Is(err, ErrDecryptionFailed):
		http.Error(w, "no usable google access token", http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
