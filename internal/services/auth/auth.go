// Package auth проверяет учётные данные администратора и зарегистрированных
// пользователей, регистрирует новых пользователей и управляет JWT-сессиями.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/portfolio-showcase/internal/collection"
	"github.com/magabrotheeeer/portfolio-showcase/internal/config"
	"github.com/magabrotheeeer/portfolio-showcase/internal/kvstore"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/jwt"
	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/password"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

// UsersKey — ключ коллекции зарегистрированных пользователей.
const UsersKey = "portfolio_users"

// Данные синтезированного администратора.
const (
	AdminID   = "admin-001"
	AdminName = "Admin"
)

var (
	// ErrInvalidCredentials — общий ответ для неизвестного email и неверного пароля.
	ErrInvalidCredentials = errors.New("Invalid email or password.")
	// ErrEmailExists — email уже зарегистрирован.
	ErrEmailExists = errors.New("Email already exists.")
	// ErrTokenRevoked — сессия завершена через logout.
	ErrTokenRevoked = errors.New("token revoked")
	// ErrPasswordTooLong — пароль длиннее password.MaxLength байт.
	ErrPasswordTooLong = errors.New("field password must be at most 72 bytes")
	// ErrEmptyName — имя пустое после обрезки пробелов.
	ErrEmptyName = errors.New("field name is a required field")
)

// RevokedTokens хранит отозванные сессии.
type RevokedTokens interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Service отвечает за вход, регистрацию и проверку сессий.
type Service struct {
	users      *collection.Collection[models.StoredUser]
	adminEmail string
	adminHash  string
	dummyHash  string
	jwtMaker   jwt.Maker
	revoked    RevokedTokens
	log        *slog.Logger
	now        func() time.Time
}

// New создаёт сервис. Пароль администратора из конфига хэшируется при старте,
// если не задан готовый password_hash.
func New(storage kvstore.Storage, admin config.Admin, jwtMaker jwt.Maker, revoked RevokedTokens, log *slog.Logger) (*Service, error) {
	const op = "auth.New"

	adminHash := admin.PasswordHash
	if adminHash == "" {
		h, err := password.GetHash(admin.Password)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		adminHash = h
	}
	if !password.IsHash(adminHash) {
		return nil, fmt.Errorf("%s: admin password_hash is not a bcrypt hash", op)
	}
	dummyHash, err := password.GetHash("dummy-password-for-timing")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Service{
		users: collection.New(storage, collection.Config[models.StoredUser]{
			Key: UsersKey,
			ID:  func(u models.StoredUser) string { return u.ID },
		}),
		adminEmail: NormalizeEmail(admin.Email),
		adminHash:  adminHash,
		dummyHash:  dummyHash,
		jwtMaker:   jwtMaker,
		revoked:    revoked,
		log:        log,
		now:        time.Now,
	}, nil
}

// NormalizeEmail приводит email к виду для сравнения: без пробелов по краям, в нижнем регистре.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login проверяет учётные данные. Администратор проверяется первым и не зависит
// от содержимого хранилища пользователей.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (models.User, error) {
	const op = "auth.Login"
	email = NormalizeEmail(email)

	if email == s.adminEmail {
		ok, err := password.Matches(s.adminHash, rawPassword)
		if err != nil {
			return models.User{}, fmt.Errorf("%s: %w", op, err)
		}
		if ok {
			return models.User{
				ID:    AdminID,
				Name:  AdminName,
				Email: email,
				Role:  models.RoleAdmin,
			}, nil
		}
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, u := range users {
		if NormalizeEmail(u.Email) != email {
			continue
		}
		ok, err := password.Matches(u.PasswordHash, rawPassword)
		if err != nil {
			return models.User{}, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return models.User{}, ErrInvalidCredentials
		}
		return u.Public(), nil
	}

	// выравниваем время ответа для неизвестного email
	_, _ = password.Matches(s.dummyHash, rawPassword)
	return models.User{}, ErrInvalidCredentials
}

// Signup регистрирует пользователя с ролью USER. Email администратора занят всегда.
func (s *Service) Signup(ctx context.Context, name, email, rawPassword string) (models.User, error) {
	const op = "auth.Signup"
	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, ErrEmptyName
	}
	if len(rawPassword) > password.MaxLength {
		return models.User{}, ErrPasswordTooLong
	}
	if email == s.adminEmail {
		return models.User{}, ErrEmailExists
	}

	hash, err := password.GetHash(rawPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	var created models.StoredUser
	err = s.users.Mutate(ctx, func(users []models.StoredUser) ([]models.StoredUser, bool, error) {
		for _, u := range users {
			if NormalizeEmail(u.Email) == email {
				return nil, false, ErrEmailExists
			}
		}
		created = models.StoredUser{
			ID:           uuid.NewString(),
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			Role:         models.RoleUser,
			CreatedAt:    s.now().UnixMilli(),
		}
		return append(users, created), true, nil
	})
	if errors.Is(err, ErrEmailExists) {
		return models.User{}, ErrEmailExists
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.String("id", created.ID))
	return created.Public(), nil
}

// IssueToken выдаёт JWT-сессию для пользователя.
func (s *Service) IssueToken(user models.User) (string, error) {
	const op = "auth.IssueToken"
	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken разбирает токен и проверяет, что сессия не отозвана.
func (s *Service) ValidateToken(ctx context.Context, token string) (*jwt.CustomClaims, error) {
	const op = "auth.ValidateToken"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Logout отзывает сессию до истечения её срока.
func (s *Service) Logout(ctx context.Context, claims *jwt.CustomClaims) error {
	const op = "auth.Logout"
	if claims == nil || claims.ID == "" {
		return fmt.Errorf("%s: %w", op, jwt.ErrInvalidToken)
	}
	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	if err := s.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
