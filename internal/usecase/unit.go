package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"go.uber.org/zap"
)

type UnitUseCase struct {
	storage models.UnitStorage
	log     *zap.Logger
}

func NewUnitUseCase(storage models.UnitStorage, log *zap.Logger) *UnitUseCase {
	return &UnitUseCase{storage: storage, log: log}
}

func (uc *UnitUseCase) prepare(unit models.Unit) (models.Unit, error) {
	description, err := requireText("description", unit.Description, 100)
	if err != nil {
		return unit, err
	}
	abbreviation, err := requireText("abbreviation", unit.Abbreviation, 10)
	if err != nil {
		return unit, err
	}
	status, err := normalizeStatus(unit.Status)
	if err != nil {
		return unit, err
	}
	unit.Description = description
	unit.Abbreviation = strings.ToUpper(abbreviation)
	unit.Status = status
	return unit, nil
}

func (uc *UnitUseCase) Create(ctx context.Context, unit models.Unit) (models.Unit, error) {
	unit, err := uc.prepare(unit)
	if err != nil {
		return models.Unit{}, err
	}
	created, err := uc.storage.CreateUnit(ctx, unit)
	if err != nil {
		return models.Unit{}, fmt.Errorf("failed to create unit: %w", err)
	}
	uc.log.Info("unit created", zap.Int64("id", created.ID), zap.String("abbreviation", created.Abbreviation))
	return created, nil
}

func (uc *UnitUseCase) Get(ctx context.Context, id int64) (models.Unit, error) {
	unit, err := uc.storage.GetUnit(ctx, id)
	if err != nil {
		return models.Unit{}, fmt.Errorf("failed to get unit %d: %w", id, err)
	}
	return unit, nil
}

func (uc *UnitUseCase) Update(ctx context.Context, unit models.Unit) (models.Unit, error) {
	unit, err := uc.prepare(unit)
	if err != nil {
		return models.Unit{}, err
	}
	updated, err := uc.storage.UpdateUnit(ctx, unit)
	if err != nil {
		return models.Unit{}, fmt.Errorf("failed to update unit %d: %w", unit.ID, err)
	}
	return updated, nil
}

func (uc *UnitUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.storage.DeleteUnit(ctx, id); err != nil {
		return fmt.Errorf("failed to delete unit %d: %w", id, err)
	}
	uc.log.Info("unit deleted", zap.Int64("id", id))
	return nil
}

func (uc *UnitUseCase) List(ctx context.Context) ([]models.Unit, error) {
	units, err := uc.storage.ListUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}
