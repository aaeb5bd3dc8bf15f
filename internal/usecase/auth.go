package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/session"
	"github.com/AlenaMolokova/masterdata/internal/storage"
	"github.com/AlenaMolokova/masterdata/internal/validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type SessionIssuer interface {
	Issue(userID int64, login string) (string, *session.Claims, error)
	Revoke(ctx context.Context, claims *session.Claims) error
}

type AuthUseCase struct {
	users     models.UserStorage
	passwords validation.PasswordValidator
	sessions  SessionIssuer
	log       *zap.Logger
}

func NewAuthUseCase(users models.UserStorage, passwords validation.PasswordValidator, sessions SessionIssuer, log *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		users:     users,
		passwords: passwords,
		sessions:  sessions,
		log:       log,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, login, password string) (string, *session.Claims, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return "", nil, invalidInput("login and password are required")
	}
	if !uc.passwords.ValidatePassword(password) {
		return "", nil, ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := uc.users.CreateUser(ctx, login, string(hashed))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return "", nil, ErrLoginExists
		}
		return "", nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.log.Info("user registered", zap.String("login", login), zap.Int64("user_id", userID))
	return uc.sessions.Issue(userID, login)
}

func (uc *AuthUseCase) Login(ctx context.Context, login, password string) (string, *session.Claims, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return "", nil, invalidInput("login and password are required")
	}

	user, err := uc.users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		uc.log.Info("invalid password", zap.String("login", login))
		return "", nil, ErrInvalidCredentials
	}

	return uc.sessions.Issue(user.ID, user.Login)
}

func (uc *AuthUseCase) Logout(ctx context.Context, claims *session.Claims) error {
	if err := uc.sessions.Revoke(ctx, claims); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
