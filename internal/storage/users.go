package storage

import (
	"context"

	"github.com/AlenaMolokova/masterdata/internal/models"
)

func (s *Storage) CreateUser(ctx context.Context, login, password string) (int64, error) {
	var id int64
	err := s.db.GetContext(ctx, &id,
		`INSERT INTO users (login, password) VALUES ($1, $2) RETURNING id`, login, password)
	if err != nil {
		return 0, classify(err)
	}
	return id, nil
}

func (s *Storage) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user,
		`SELECT id, login, password, created_at FROM users WHERE login = $1`, login)
	return user, classify(err)
}
