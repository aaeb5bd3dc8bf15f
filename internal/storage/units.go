package storage

import (
	"context"

	"github.com/AlenaMolokova/masterdata/internal/models"
)

const unitColumns = `id, description, abbreviation, status, created_at, updated_at`

func (s *Storage) CreateUnit(ctx context.Context, unit models.Unit) (models.Unit, error) {
	var created models.Unit
	err := s.db.GetContext(ctx, &created,
		`INSERT INTO units (description, abbreviation, status) VALUES ($1, $2, $3) RETURNING `+unitColumns,
		unit.Description, unit.Abbreviation, unit.Status)
	return created, classify(err)
}

func (s *Storage) GetUnit(ctx context.Context, id int64) (models.Unit, error) {
	var unit models.Unit
	err := s.db.GetContext(ctx, &unit,
		`SELECT `+unitColumns+` FROM units WHERE id = $1`, id)
	return unit, classify(err)
}

func (s *Storage) UpdateUnit(ctx context.Context, unit models.Unit) (models.Unit, error) {
	var updated models.Unit
	err := s.db.GetContext(ctx, &updated,
		`UPDATE units SET description = $1, abbreviation = $2, status = $3, updated_at = now()
		WHERE id = $4 RETURNING `+unitColumns,
		unit.Description, unit.Abbreviation, unit.Status, unit.ID)
	return updated, classify(err)
}

// DeleteUnit fails with ErrInvalidReference while articles still use the unit.
func (s *Storage) DeleteUnit(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM units WHERE id = $1`, id)
}

func (s *Storage) ListUnits(ctx context.Context) ([]models.Unit, error) {
	units := []models.Unit{}
	err := s.db.SelectContext(ctx, &units,
		`SELECT `+unitColumns+` FROM units ORDER BY id`)
	if err != nil {
		return nil, classify(err)
	}
	return units, nil
}
