package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prabhashaj/EdututorAI/internal/auth"
	"github.com/prabhashaj/EdututorAI/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			http.Error(w, "email already registered", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidRole):
			http.Error(w, "invalid role", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to register user")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to log user in")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

// Token is the OAuth2-password-flow compatible variant of Login: it
// reads form-encoded username/password instead of JSON.
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(r.Context(), LoginRequest{
		Email:    r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, "incorrect username or password", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to issue token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"access_token": resp.AccessToken,
		"token_type":   resp.TokenType,
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load current user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, NewUserResponse(u))
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GoogleLogin(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrGoogleTokenInvalid) {
			http.Error(w, "invalid google token", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to sign in with Google")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.Refresh(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to refresh token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) CreateDemoUsers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.SeedDemoUsers(r.Context()); err != nil {
		log.WithError(err).Error("Failed to create demo users")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Demo users created successfully",
	})
}
