package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	personnelRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/personnel"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/auth/models"
	personnelModels "github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/crypto"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/jwt"
)

// Service регистрация, вход и проверка токенов
type Service struct {
	personnelRepo PersonnelRepository
	secret        string
	ttl           time.Duration
	logger        Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(personnelRepo PersonnelRepository, secret string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		personnelRepo: personnelRepo,
		secret:        secret,
		ttl:           ttl,
		logger:        logger,
	}
}

// Register создает сотрудника с учетной записью и сразу выдает токен.
// Окно доступности нового сотрудника 09:00-17:00.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength || len(req.Password) > domain.MaxPasswordLength {
		return nil, fmt.Errorf("%w: password must be %d..%d characters",
			ErrInvalidInput, domain.MinPasswordLength, domain.MaxPasswordLength)
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Register: hash password: %v", err)
		return nil, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	person, err := s.personnelRepo.Create(ctx, &domain.Resource{
		ID:    uuid.NewString(),
		Name:  name,
		Role:  strings.TrimSpace(req.Role),
		Email: email,
		Availability: domain.Availability{
			Start: domain.DefaultAvailabilityStart,
			End:   domain.DefaultAvailabilityEnd,
		},
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, personnelRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email %s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user id=%s registered", person.ID)
	return s.issue(person)
}

// Login проверяет пароль и выдает токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	person, err := s.personnelRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, personnelRepo.ErrPersonNotFound) {
			s.logger.Warn("Login: unknown email %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !person.HasPassword() || crypto.ComparePassword(person.PasswordHash, req.Password) != nil {
		s.logger.Warn("Login: wrong password for id=%s", person.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%s logged in", person.ID)
	return s.issue(person)
}

// Me возвращает пользователя по ID из токена
func (s *Service) Me(ctx context.Context, userID string) (*personnelModels.PersonResponse, error) {
	person, err := s.personnelRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, personnelRepo.ErrPersonNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Me: repository error for id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Me - repository error: %v", ErrInternal, err)
	}
	return personnelModels.FromDomainPerson(person), nil
}

func (s *Service) issue(person *domain.Resource) (*models.TokenResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(person.ID, person.Email, s.secret, s.ttl)
	if err != nil {
		s.logger.Error("issue: sign token for id=%s: %v", person.ID, err)
		return nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}
	return &models.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *personnelModels.FromDomainPerson(person),
	}, nil
}
