package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("record already exists")
	ErrInvalidReference = errors.New("referenced record does not exist or is still in use")
	ErrInvalidValue     = errors.New("value violates a column constraint")
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) (*Storage, error) {
	if db == nil {
		return nil, errors.New("database handle is nil")
	}
	return &Storage{db: db}, nil
}

// Open connects through the pgx stdlib driver; the caller owns the returned handle.
func Open(ctx context.Context, databaseURI string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", databaseURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// classify maps driver errors onto the storage sentinels.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w (%s)", ErrDuplicate, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w (%s)", ErrInvalidReference, pgErr.ConstraintName)
		case pgerrcode.NumericValueOutOfRange, pgerrcode.CheckViolation, pgerrcode.StringDataRightTruncationDataException:
			return fmt.Errorf("%w: %s", ErrInvalidValue, pgErr.Message)
		}
	}
	return err
}

func (s *Storage) deleteByID(ctx context.Context, query string, id int64) error {
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
