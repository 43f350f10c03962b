package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prabhashaj/EdututorAI/internal/auth"
	"github.com/prabhashaj/EdututorAI/internal/config"
	"github.com/prabhashaj/EdututorAI/internal/vectorindex"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrGoogleTokenInvalid = errors.New("invalid google token")
)

type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GoogleLogin(ctx context.Context, req GoogleLoginRequest) (*TokenResponse, error)
	Refresh(ctx context.Context, userID string) (*TokenResponse, error)
	SeedDemoUsers(ctx context.Context) error
}

type userService struct {
	repo  UserRepository
	index vectorindex.Index
}

func NewService(repo UserRepository, index vectorindex.Index) UserService {
	return &userService{repo: repo, index: index}
}

func tokenTTL() time.Duration {
	minutes, err := strconv.Atoi(config.GetEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30"))
	if err != nil || minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	log := config.WithContext(ctx)

	if !req.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Email:          req.Email,
		Name:           req.Name,
		Role:           req.Role,
		HashedPassword: hash,
		Courses:        []string{},
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}

	s.upsertProfile(ctx, u)

	log.Infof("Registered user %s with role %s", u.Email, u.Role)
	return s.issueToken(u)
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.HashedPassword == "" || !auth.CheckPassword(req.Password, u.HashedPassword) {
		log.Warnf("Failed login attempt for %s", req.Email)
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(u)
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// GoogleLogin accepts a Google ID token, resolves it to a profile and
// signs the user in, creating the account on first sight. Token payload
// decoding is stubbed; verification against Google's keys is not wired.
func (s *userService) GoogleLogin(ctx context.Context, req GoogleLoginRequest) (*TokenResponse, error) {
	log := config.WithContext(ctx)

	profile, err := decodeGoogleToken(req.Token)
	if err != nil {
		return nil, ErrGoogleTokenInvalid
	}

	u, err := s.repo.GetByEmail(profile.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &User{
			Email:    profile.Email,
			Name:     profile.Name,
			Role:     RoleStudent,
			GoogleID: &profile.Subject,
			Courses:  []string{},
		}
		if err := s.repo.Create(u); err != nil {
			return nil, err
		}
		s.upsertProfile(ctx, u)
		log.Infof("Created user %s from Google sign-in", u.Email)
	}

	encryptedAccess, err := config.Encrypt(req.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}
	u.EncryptedGoogleAccessToken = encryptedAccess

	if req.RefreshToken != "" {
		encryptedRefresh, err := config.Encrypt(req.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
		u.EncryptedGoogleRefreshToken = encryptedRefresh
	}

	u.GoogleID = &profile.Subject
	if err := s.repo.Update(u); err != nil {
		return nil, err
	}

	return s.issueToken(u)
}

func (s *userService) Refresh(ctx context.Context, userID string) (*TokenResponse, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.issueToken(u)
}

func (s *userService) issueToken(u *User) (*TokenResponse, error) {
	token, err := auth.GenerateJWT(u.ID.String(), string(u.Role), tokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        NewUserResponse(u),
	}, nil
}

func (s *userService) upsertProfile(ctx context.Context, u *User) {
	err := s.index.UpsertProfile(ctx, vectorindex.Profile{
		UserID:  u.ID.String(),
		Name:    u.Name,
		Email:   u.Email,
		Role:    string(u.Role),
		Courses: u.Courses,
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to index user profile")
	}
}

type googleProfile struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

func decodeGoogleToken(token string) (*googleProfile, error) {
	if token == "" {
		return nil, errors.New("empty token")
	}
	return &googleProfile{
		Subject: "google_user_123",
		Email:   "user@gmail.com",
		Name:    "Google User",
		Picture: "https://example.com/avatar.jpg",
	}, nil
}
