package usecase

import (
	"context"
	"fmt"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"go.uber.org/zap"
)

type DepartmentUseCase struct {
	storage models.DepartmentStorage
	log     *zap.Logger
}

func NewDepartmentUseCase(storage models.DepartmentStorage, log *zap.Logger) *DepartmentUseCase {
	return &DepartmentUseCase{storage: storage, log: log}
}

func (uc *DepartmentUseCase) prepare(dept models.Department) (models.Department, error) {
	name, err := requireText("name", dept.Name, 100)
	if err != nil {
		return dept, err
	}
	status, err := normalizeStatus(dept.Status)
	if err != nil {
		return dept, err
	}
	dept.Name = name
	dept.Status = status
	return dept, nil
}

func (uc *DepartmentUseCase) Create(ctx context.Context, dept models.Department) (models.Department, error) {
	dept, err := uc.prepare(dept)
	if err != nil {
		return models.Department{}, err
	}
	created, err := uc.storage.CreateDepartment(ctx, dept)
	if err != nil {
		return models.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	uc.log.Info("department created", zap.Int64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (uc *DepartmentUseCase) Get(ctx context.Context, id int64) (models.Department, error) {
	dept, err := uc.storage.GetDepartment(ctx, id)
	if err != nil {
		return models.Department{}, fmt.Errorf("failed to get department %d: %w", id, err)
	}
	return dept, nil
}

func (uc *DepartmentUseCase) Update(ctx context.Context, dept models.Department) (models.Department, error) {
	dept, err := uc.prepare(dept)
	if err != nil {
		return models.Department{}, err
	}
	updated, err := uc.storage.UpdateDepartment(ctx, dept)
	if err != nil {
		return models.Department{}, fmt.Errorf("failed to update department %d: %w", dept.ID, err)
	}
	return updated, nil
}

func (uc *DepartmentUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.storage.DeleteDepartment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete department %d: %w", id, err)
	}
	uc.log.Info("department deleted", zap.Int64("id", id))
	return nil
}

func (uc *DepartmentUseCase) List(ctx context.Context) ([]models.Department, error) {
	departments, err := uc.storage.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}
