package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/internal/dto/request"
	"github.com/nopasawa/Suki/internal/dto/response"
	"github.com/nopasawa/Suki/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.Staff.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to look up staff user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("look up staff user: %w", err)
	}

	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Invalid credentials", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid username or password")
	}

	now := time.Now()
	session := &entity.Session{
		Token:     utils.GenerateSessionToken(),
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
		CreatedAt: now,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("Staff logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return &response.AuthResponse{
		Token:     session.Token.String(),
		Username:  user.Username,
		Role:      string(user.Role),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return fmt.Errorf("invalid session token: %w", err)
	}

	if err := s.repo.Session.Delete(ctx, parsed); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("Staff logged out")
	return nil
}
