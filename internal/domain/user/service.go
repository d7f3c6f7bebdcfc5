package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Login(ctx context.Context, email, password string) (User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*User, error)
	LoggedIn(ctx context.Context) (bool, error)
}

// Service реализует локальный вход без сервера авторизации: учетная
// запись собирается из введенного email, признак администратора
// определяется сравнением с настроенной админской парой.
type Service struct {
	repo       Repository
	adminEmail string
	adminHash  []byte
	log        *slog.Logger
}

func NewService(repo Repository, adminEmail, adminPassword string, log *slog.Logger) (*Service, error) {
	// Секрет администратора держим только в виде bcrypt-хеша
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("ошибка подготовки секрета администратора: %w", err)
	}

	return &Service{
		repo:       repo,
		adminEmail: adminEmail,
		adminHash:  hash,
		log:        log,
	}, nil
}

// Login создает пользователя по email и сохраняет его как текущего.
// Имя - локальная часть email до @. Пароль нигде не сохраняется.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, ErrMissingCredentials
	}

	at := strings.Index(email, "@")
	if at < 0 {
		return User{}, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	isAdmin := strings.EqualFold(email, s.adminEmail) &&
		bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil

	u := User{
		ID:      uuid.NewString(),
		Email:   email,
		Name:    email[:at],
		IsAdmin: isAdmin,
	}

	if err := s.repo.SaveUser(ctx, u); err != nil {
		return User{}, fmt.Errorf("ошибка сохранения пользователя: %w", err)
	}

	s.log.Info("user logged in", slog.String("name", u.Name), slog.Bool("admin", u.IsAdmin))

	return u, nil
}

// Logout удаляет текущего пользователя и сбрасывает флаг входа.
// Бронирования при выходе не очищаются.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.repo.Logout(ctx); err != nil {
		return fmt.Errorf("ошибка выхода: %w", err)
	}

	s.log.Info("user logged out")
	return nil
}

// Current возвращает текущего пользователя или nil, если входа не было.
func (s *Service) Current(ctx context.Context) (*User, error) {
	return s.repo.GetUser(ctx)
}

// LoggedIn сообщает, выполнен ли вход на этом устройстве.
func (s *Service) LoggedIn(ctx context.Context) (bool, error) {
	return s.repo.IsLoggedIn(ctx)
}
