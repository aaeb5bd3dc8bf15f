package storage

import (
	"context"

	"github.com/AlenaMolokova/masterdata/internal/models"
)

const supplierColumns = `id, name, identity_number, contact_name, phone, email, status, created_at, updated_at`

func (s *Storage) CreateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	var created models.Supplier
	err := s.db.GetContext(ctx, &created,
		`INSERT INTO suppliers (name, identity_number, contact_name, phone, email, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+supplierColumns,
		supplier.Name, supplier.IdentityNumber, supplier.ContactName, supplier.Phone, supplier.Email, supplier.Status)
	return created, classify(err)
}

func (s *Storage) GetSupplier(ctx context.Context, id int64) (models.Supplier, error) {
	var supplier models.Supplier
	err := s.db.GetContext(ctx, &supplier,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
	return supplier, classify(err)
}

func (s *Storage) UpdateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	var updated models.Supplier
	err := s.db.GetContext(ctx, &updated,
		`UPDATE suppliers SET name = $1, identity_number = $2, contact_name = $3, phone = $4, email = $5,
		status = $6, updated_at = now() WHERE id = $7 RETURNING `+supplierColumns,
		supplier.Name, supplier.IdentityNumber, supplier.ContactName, supplier.Phone, supplier.Email,
		supplier.Status, supplier.ID)
	return updated, classify(err)
}

func (s *Storage) DeleteSupplier(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
}

func (s *Storage) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	err := s.db.SelectContext(ctx, &suppliers,
		`SELECT `+supplierColumns+` FROM suppliers ORDER BY id`)
	if err != nil {
		return nil, classify(err)
	}
	return suppliers, nil
}
