package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/validation"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

type ValidationObserver interface {
	ObserveIdentityValidation(valid bool)
}

type SupplierUseCase struct {
	storage   models.SupplierStorage
	validator validation.IdentityValidator
	observer  ValidationObserver
	log       *zap.Logger
}

func NewSupplierUseCase(storage models.SupplierStorage, validator validation.IdentityValidator, observer ValidationObserver, log *zap.Logger) *SupplierUseCase {
	return &SupplierUseCase{
		storage:   storage,
		validator: validator,
		observer:  observer,
		log:       log,
	}
}

func optionalText(value pgtype.Text) pgtype.Text {
	trimmed := strings.TrimSpace(value.String)
	if !value.Valid || trimmed == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: trimmed, Valid: true}
}

// prepare checks the identity number before anything is persisted and stores it
// in its normalized 11-digit form.
func (uc *SupplierUseCase) prepare(supplier models.Supplier) (models.Supplier, error) {
	name, err := requireText("name", supplier.Name, 150)
	if err != nil {
		return supplier, err
	}
	status, err := normalizeStatus(supplier.Status)
	if err != nil {
		return supplier, err
	}

	valid := uc.validator.ValidateIdentityNumber(supplier.IdentityNumber)
	if uc.observer != nil {
		uc.observer.ObserveIdentityValidation(valid)
	}
	if !valid {
		return supplier, ErrInvalidIdentityNumber
	}
	normalized, ok := validation.NormalizeIdentityNumber(supplier.IdentityNumber)
	if !ok {
		return supplier, ErrInvalidIdentityNumber
	}

	supplier.Name = name
	supplier.Status = status
	supplier.IdentityNumber = normalized
	supplier.ContactName = optionalText(supplier.ContactName)
	supplier.Phone = optionalText(supplier.Phone)
	supplier.Email = optionalText(supplier.Email)
	return supplier, nil
}

func (uc *SupplierUseCase) Create(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	supplier, err := uc.prepare(supplier)
	if err != nil {
		return models.Supplier{}, err
	}
	created, err := uc.storage.CreateSupplier(ctx, supplier)
	if err != nil {
		return models.Supplier{}, fmt.Errorf("failed to create supplier: %w", err)
	}
	uc.log.Info("supplier created", zap.Int64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (uc *SupplierUseCase) Get(ctx context.Context, id int64) (models.Supplier, error) {
	supplier, err := uc.storage.GetSupplier(ctx, id)
	if err != nil {
		return models.Supplier{}, fmt.Errorf("failed to get supplier %d: %w", id, err)
	}
	return supplier, nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	supplier, err := uc.prepare(supplier)
	if err != nil {
		return models.Supplier{}, err
	}
	updated, err := uc.storage.UpdateSupplier(ctx, supplier)
	if err != nil {
		return models.Supplier{}, fmt.Errorf("failed to update supplier %d: %w", supplier.ID, err)
	}
	return updated, nil
}

func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.storage.DeleteSupplier(ctx, id); err != nil {
		return fmt.Errorf("failed to delete supplier %d: %w", id, err)
	}
	uc.log.Info("supplier deleted", zap.Int64("id", id))
	return nil
}

func (uc *SupplierUseCase) List(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := uc.storage.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}
