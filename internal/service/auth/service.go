package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/infra/storage/entity"
	"github.com/m04kA/SST-VisitService/internal/service/auth/models"
	"github.com/m04kA/SST-VisitService/internal/validation"
)

// Service аутентификация по email и паролю, токены сессии и профиль
type Service struct {
	users    UserStore
	clock    TimeProvider
	validate *validator.Validate
	secret   []byte
	tokenTTL time.Duration
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(users UserStore, clock TimeProvider, validate *validator.Validate, secret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		users:    users,
		clock:    clock,
		validate: validate,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// LookupUser возвращает пользователя без хеша пароля, если email и пароль совпали
func (s *Service) LookupUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: failed to find user: %v", ErrInternal, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user.Public(), nil
}

// Login проверяет учетные данные и выдает токен сессии
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Login: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	user, err := s.LookupUser(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			s.logger.Warn("Login: invalid credentials for email=%s", req.Email)
		} else {
			s.logger.Error("Login: %v", err)
		}
		return nil, err
	}

	token, expiresAt, err := s.signToken(user.ID, string(user.Role), s.clock.Now())
	if err != nil {
		s.logger.Error("Login: failed to sign token for user=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user=%s, role=%s", user.ID, user.Role)
	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *models.FromDomainUser(user),
	}, nil
}

// Authenticate возвращает пользователя по токену сессии.
// Роль всегда берется из хранилища, а не из токена.
func (s *Service) Authenticate(ctx context.Context, raw string) (*domain.User, error) {
	claims, err := s.ParseToken(raw)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return user.Public(), nil
}

// UpdateProfile меняет имя, email и аватар текущего пользователя
func (s *Service) UpdateProfile(ctx context.Context, actor *domain.User, req *models.ProfileRequest) (*models.UserResponse, error) {
	if actor == nil {
		return nil, ErrInvalidToken
	}
	s.logger.Info("UpdateProfile: user=%s", actor.ID)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("UpdateProfile: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	updated, err := s.users.UpdateUserProfile(ctx, actor.ID, strings.TrimSpace(req.Name), strings.TrimSpace(req.Email), req.Avatar)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmailTaken):
			s.logger.Warn("UpdateProfile: email=%s already in use", req.Email)
			return nil, ErrEmailTaken
		case errors.Is(err, entity.ErrUserNotFound):
			s.logger.Warn("UpdateProfile: user=%s no longer exists", actor.ID)
			return nil, ErrInvalidToken
		}
		s.logger.Error("UpdateProfile: failed to update user=%s: %v", actor.ID, err)
		return nil, fmt.Errorf("%w: failed to update profile: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: user=%s updated", actor.ID)
	return models.FromDomainUser(updated), nil
}
