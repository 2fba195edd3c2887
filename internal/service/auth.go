package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/crime_observatory/internal/auth"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/sirupsen/logrus"
)

// UserRepository определяет контракт чтения учетных записей
type UserRepository interface {
	// GetByUsername возвращает models.ErrNotFound, если пользователя нет
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenIssuer выпускает токены доступа
type TokenIssuer interface {
	GenerateAccessToken(username string, role auth.Role) (string, error)
}

// AuthService определяет контракт входа сотрудников
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.AccessToken, error)
}

type authService struct {
	users  UserRepository
	tokens TokenIssuer
	logger *logrus.Logger
}

func NewAuthService(users UserRepository, tokens TokenIssuer, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Login проверяет пароль и выдает bearer токен с ролью пользователя
func (s *authService) Login(ctx context.Context, username, password string) (*models.AccessToken, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Login attempt for unknown user")
			return nil, auth.ErrInvalidCredential
		}
		log.WithError(err).Error("Failed to load user")
		return nil, fmt.Errorf("service: could not load user: %w", err)
	}

	if !user.IsActive || !auth.CheckPassword(user.PasswordHash, password) {
		log.Warn("Login rejected")
		return nil, auth.ErrInvalidCredential
	}

	role, ok := auth.ParseRole(user.Role)
	if !ok || role == auth.RolePublic {
		log.WithField("role", user.Role).Warn("User has no assignable role")
		return nil, auth.ErrInvalidCredential
	}

	token, err := s.tokens.GenerateAccessToken(user.Username, role)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("role", role.String()).Info("User logged in")
	return &models.AccessToken{AccessToken: token, TokenType: "bearer", Role: role.String()}, nil
}
