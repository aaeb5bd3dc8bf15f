package handlers

import (
	"context"
	"encoding/json"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/session"
)

type DepartmentService interface {
	Create(ctx context.Context, dept models.Department) (models.Department, error)
	Get(ctx context.Context, id int64) (models.Department, error)
	Update(ctx context.Context, dept models.Department) (models.Department, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.Department, error)
}

type SupplierService interface {
	Create(ctx context.Context, supplier models.Supplier) (models.Supplier, error)
	Get(ctx context.Context, id int64) (models.Supplier, error)
	Update(ctx context.Context, supplier models.Supplier) (models.Supplier, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.Supplier, error)
}

type UnitService interface {
	Create(ctx context.Context, unit models.Unit) (models.Unit, error)
	Get(ctx context.Context, id int64) (models.Unit, error)
	Update(ctx context.Context, unit models.Unit) (models.Unit, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.Unit, error)
}

type ArticleService interface {
	Create(ctx context.Context, article models.Article) (models.Article, error)
	Get(ctx context.Context, id int64) (models.Article, error)
	Update(ctx context.Context, article models.Article) (models.Article, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.Article, error)
}

type AuthService interface {
	Register(ctx context.Context, login, password string) (string, *session.Claims, error)
	Login(ctx context.Context, login, password string) (string, *session.Claims, error)
	Logout(ctx context.Context, claims *session.Claims) error
}

type AccountingService interface {
	ListAccounts(ctx context.Context) (json.RawMessage, error)
	ListEntries(ctx context.Context) (json.RawMessage, error)
	CreateEntry(ctx context.Context, entry models.AccountingEntry) (json.RawMessage, error)
}

type IdentityChecker interface {
	ValidateIdentityNumber(number string) bool
}

type IdentityObserver interface {
	ObserveIdentityValidation(valid bool)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
