package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/session"
	"github.com/AlenaMolokova/masterdata/internal/storage"
	"github.com/AlenaMolokova/masterdata/internal/testutils"
	"github.com/AlenaMolokova/masterdata/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	claims := &session.Claims{UserID: 1, Login: "operador"}

	tests := []struct {
		name        string
		login       string
		password    string
		setupMocks  func(*testutils.MockUserStorage, *testutils.MockSessions)
		expectedErr error
	}{
		{
			name:     "успешная регистрация",
			login:    " operador ",
			password: "secreto123",
			setupMocks: func(us *testutils.MockUserStorage, sm *testutils.MockSessions) {
				us.On("CreateUser", mock.Anything, "operador", mock.MatchedBy(func(hash string) bool {
					return bcrypt.CompareHashAndPassword([]byte(hash), []byte("secreto123")) == nil
				})).Return(int64(1), nil)
				sm.On("Issue", int64(1), "operador").Return("token", claims, nil)
			},
		},
		{
			name:        "слабый пароль",
			login:       "operador",
			password:    "12345678",
			setupMocks:  func(us *testutils.MockUserStorage, sm *testutils.MockSessions) {},
			expectedErr: ErrWeakPassword,
		},
		{
			name:        "пустой логин",
			login:       "",
			password:    "secreto123",
			setupMocks:  func(us *testutils.MockUserStorage, sm *testutils.MockSessions) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:     "логин занят",
			login:    "operador",
			password: "secreto123",
			setupMocks: func(us *testutils.MockUserStorage, sm *testutils.MockSessions) {
				us.On("CreateUser", mock.Anything, "operador", mock.Anything).
					Return(int64(0), storage.ErrDuplicate)
			},
			expectedErr: ErrLoginExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			us := &testutils.MockUserStorage{}
			sm := &testutils.MockSessions{}
			tt.setupMocks(us, sm)

			uc := NewAuthUseCase(us, validation.NewDefaultPasswordValidator(), sm, zap.NewNop())
			token, _, err := uc.Register(ctx, tt.login, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token", token)
			}
			us.AssertExpectations(t)
			sm.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := models.User{ID: 5, Login: "operador", Password: string(hashed)}

	tests := []struct {
		name        string
		password    string
		setupMocks  func(*testutils.MockUserStorage, *testutils.MockSessions)
		expectedErr error
	}{
		{
			name:     "успешный логин",
			password: "secreto123",
			setupMocks: func(us *testutils.MockUserStorage, sm *testutils.MockSessions) {
				us.On("GetUserByLogin", mock.Anything, "operador").Return(user, nil)
				sm.On("Issue", int64(5), "operador").Return("token", &session.Claims{UserID: 5}, nil)
			},
		},
		{
			name:     "неверный пароль",
			password: "otroclave1",
			setupMocks: func(us *testutils.MockUserStorage, sm *testutils.MockSessions) {
				us.On("GetUserByLogin", mock.Anything, "operador").Return(user, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "пользователь не найден",
			password: "secreto123",
			setupMocks: func(us *testutils.MockUserStorage, sm *testutils.MockSessions) {
				us.On("GetUserByLogin", mock.Anything, "operador").Return(models.User{}, storage.ErrNotFound)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "ошибка хранилища",
			password: "secreto123",
			setupMocks: func(us *testutils.MockUserStorage, sm *testutils.MockSessions) {
				us.On("GetUserByLogin", mock.Anything, "operador").Return(models.User{}, errors.New("db error"))
			},
			expectedErr: errors.New("failed to get user: db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			us := &testutils.MockUserStorage{}
			sm := &testutils.MockSessions{}
			tt.setupMocks(us, sm)

			uc := NewAuthUseCase(us, validation.NewDefaultPasswordValidator(), sm, zap.NewNop())
			_, _, err := uc.Login(ctx, "operador", tt.password)

			switch {
			case tt.expectedErr == nil:
				assert.NoError(t, err)
			case errors.Is(tt.expectedErr, ErrInvalidCredentials):
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			default:
				assert.EqualError(t, err, tt.expectedErr.Error())
			}
			us.AssertExpectations(t)
			sm.AssertExpectations(t)
		})
	}
}

func TestLogout(t *testing.T) {
	claims := &session.Claims{UserID: 5}
	sm := &testutils.MockSessions{}
	sm.On("Revoke", mock.Anything, claims).Return(errors.New("redis down"))

	uc := NewAuthUseCase(&testutils.MockUserStorage{}, validation.NewDefaultPasswordValidator(), sm, zap.NewNop())
	err := uc.Logout(context.Background(), claims)

	assert.EqualError(t, err, "failed to revoke session: redis down")
	sm.AssertExpectations(t)
}
