package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/campusvoice/feedback-service/internal/models"
	"github.com/campusvoice/feedback-service/internal/store"
	"github.com/campusvoice/feedback-service/internal/validator"
)

// AuthService handles login and signup against the stored user collection.
//
// There is no real credential security here: passwords are compared as plain
// text and the returned token is an opaque string nothing ever verifies. The
// caller owns the session entirely.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Signup(ctx context.Context, req *SignupRequest) (*models.User, error)
}

type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginResult is the one place a business failure is a normal return value
// rather than an error: bad credentials come back as Success=false with a
// user-facing message.
type LoginResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

type authService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validator.Validator
	latency   latency
}

func NewAuthService(st store.Store, logger *slog.Logger, v *validator.Validator, delay time.Duration) AuthService {
	return &authService{
		store:     st,
		logger:    logger,
		validator: v,
		latency:   latency{delay: delay},
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(email))

	var match *models.User
	emailExists := false
	for i := range users {
		if strings.ToLower(users[i].Email) != normalized {
			continue
		}
		emailExists = true
		if users[i].Password == password {
			match = &users[i]
		}
		break
	}

	if match == nil {
		message := "No account found"
		if emailExists {
			message = "Incorrect password"
		}
		s.logger.Info("Login rejected", "email", normalized, "reason", message)
		return &LoginResult{Success: false, Message: message}, nil
	}

	user := match.WithoutPassword()
	s.logger.Info("Login succeeded", "user_id", user.ID, "role", user.Role)

	return &LoginResult{
		Success: true,
		User:    &user,
		Token:   fmt.Sprintf("token_%d_%d", user.ID, time.Now().UnixMilli()),
	}, nil
}

func (s *authService) Signup(ctx context.Context, req *SignupRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(req.Email))
	for i := range users {
		if strings.ToLower(users[i].Email) == normalized {
			if err := s.latency.simulate(ctx); err != nil {
				return nil, err
			}
			return nil, ErrEmailRegistered
		}
	}

	newUser := models.User{
		ID:        nextID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      models.RoleStudent,
	}

	users = append(users, newUser)
	if err := s.store.Write(ctx, models.StorageKeyUsers, users); err != nil {
		return nil, fmt.Errorf("failed to save users: %w", err)
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", "user_id", newUser.ID, "email", newUser.Email)

	created := newUser.WithoutPassword()
	return &created, nil
}

func (s *authService) loadUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if _, err := s.store.Read(ctx, models.StorageKeyUsers, &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}
