package storage

import (
	"context"

	"github.com/AlenaMolokova/masterdata/internal/models"
)

const departmentColumns = `id, name, status, created_at, updated_at`

func (s *Storage) CreateDepartment(ctx context.Context, dept models.Department) (models.Department, error) {
	var created models.Department
	err := s.db.GetContext(ctx, &created,
		`INSERT INTO departments (name, status) VALUES ($1, $2) RETURNING `+departmentColumns,
		dept.Name, dept.Status)
	return created, classify(err)
}

func (s *Storage) GetDepartment(ctx context.Context, id int64) (models.Department, error) {
	var dept models.Department
	err := s.db.GetContext(ctx, &dept,
		`SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id)
	return dept, classify(err)
}

func (s *Storage) UpdateDepartment(ctx context.Context, dept models.Department) (models.Department, error) {
	var updated models.Department
	err := s.db.GetContext(ctx, &updated,
		`UPDATE departments SET name = $1, status = $2, updated_at = now() WHERE id = $3 RETURNING `+departmentColumns,
		dept.Name, dept.Status, dept.ID)
	return updated, classify(err)
}

func (s *Storage) DeleteDepartment(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM departments WHERE id = $1`, id)
}

func (s *Storage) ListDepartments(ctx context.Context) ([]models.Department, error) {
	departments := []models.Department{}
	err := s.db.SelectContext(ctx, &departments,
		`SELECT `+departmentColumns+` FROM departments ORDER BY id`)
	if err != nil {
		return nil, classify(err)
	}
	return departments, nil
}
