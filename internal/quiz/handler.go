package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prabhashaj/EdututorAI/internal/analytics"
	"github.com/prabhashaj/EdututorAI/internal/assignment"
	"github.com/prabhashaj/EdututorAI/internal/auth"
	"github.com/prabhashaj/EdututorAI/internal/config"
)

type Handler struct {
	service     QuizService
	assignments assignment.Service
	analytics   analytics.Service
}

func NewHandler(s QuizService, assignments assignment.Service, analytics analytics.Service) *Handler {
	return &Handler{
		service:     s,
		assignments: assignments,
		analytics:   analytics,
	}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Topic == "" {
		http.Error(w, "topic required", http.StatusBadRequest)
		return
	}

	view, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate quiz")
		http.Error(w, "failed to generate quiz", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, view)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.GetQuiz(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound), errors.Is(err, ErrInvalidID):
			http.Error(w, "quiz not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to load quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	views, err := h.service.ListQuizzes(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"quizzes": views})
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Submit(r.Context(), claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid quiz id", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to submit quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) UserHistory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	history, err := h.service.HistoryByUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		log.WithError(err).Error("Failed to load quiz history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"history": history})
}

func (h *Handler) EducatorHistory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	items, err := h.service.EducatorHistory(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load educator history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"quizzes": items})
}

func (h *Handler) AssignQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.GetQuiz(r.Context(), req.QuizID)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) || errors.Is(err, ErrInvalidID) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load quiz for assignment")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	studentIDs := make([]uuid.UUID, 0, len(req.StudentIDs))
	for _, raw := range req.StudentIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid student id", http.StatusBadRequest)
			return
		}
		studentIDs = append(studentIDs, id)
	}

	created, err := h.assignments.Assign(r.Context(), view.ID, view.Title, view.Topic, studentIDs, req.NotificationMessage)
	if err != nil {
		log.WithError(err).Error("Failed to assign quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message":       fmt.Sprintf("Quiz assigned to %d students", len(studentIDs)),
		"assignment_id": created.ID,
	})
}

func (h *Handler) StudentAssignments(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	studentID, err := uuid.Parse(chi.URLParam(r, "studentID"))
	if err != nil {
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}

	rows, err := h.assignments.ListByStudent(r.Context(), studentID)
	if err != nil {
		log.WithError(err).Error("Failed to list student assignments")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"assignments": rows})
}

func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	summaries, err := h.assignments.ListAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list assignments")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"assignments": summaries})
}

func (h *Handler) StudentsAnalytics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	overview, err := h.analytics.StudentsOverview(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load student analytics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, overview)
}

func (h *Handler) MyAnalytics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	history, err := h.service.HistoryByUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load history for analytics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	outcomes := make([]analytics.QuizOutcome, 0, len(history))
	for _, item := range history {
		outcomes = append(outcomes, analytics.QuizOutcome{
			Topic:      item.Topic,
			Difficulty: item.Difficulty,
			Score:      item.Score,
		})
	}

	config.JSON(w, http.StatusOK, h.analytics.StudentMetrics(outcomes))
}
