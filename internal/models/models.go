package models

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Department struct {
	ID        int64              `db:"id" json:"id"`
	Name      string             `db:"name" json:"name"`
	Status    string             `db:"status" json:"status"`
	CreatedAt pgtype.Timestamptz `db:"created_at" json:"created_at"`
	UpdatedAt pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}

type Supplier struct {
	ID             int64              `db:"id" json:"id"`
	Name           string             `db:"name" json:"name"`
	IdentityNumber string             `db:"identity_number" json:"identity_number"`
	ContactName    pgtype.Text        `db:"contact_name" json:"contact_name"`
	Phone          pgtype.Text        `db:"phone" json:"phone"`
	Email          pgtype.Text        `db:"email" json:"email"`
	Status         string             `db:"status" json:"status"`
	CreatedAt      pgtype.Timestamptz `db:"created_at" json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}

type Unit struct {
	ID           int64              `db:"id" json:"id"`
	Description  string             `db:"description" json:"description"`
	Abbreviation string             `db:"abbreviation" json:"abbreviation"`
	Status       string             `db:"status" json:"status"`
	CreatedAt    pgtype.Timestamptz `db:"created_at" json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}

type Article struct {
	ID          int64              `db:"id" json:"id"`
	Description string             `db:"description" json:"description"`
	UnitID      int64              `db:"unit_id" json:"unit_id"`
	SupplierID  pgtype.Int8        `db:"supplier_id" json:"supplier_id"`
	Stock       decimal.Decimal    `db:"stock" json:"stock"`
	UnitCost    decimal.Decimal    `db:"unit_cost" json:"unit_cost"`
	Status      string             `db:"status" json:"status"`
	CreatedAt   pgtype.Timestamptz `db:"created_at" json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `db:"updated_at" json:"updated_at"`
}

type User struct {
	ID        int64              `db:"id"`
	Login     string             `db:"login"`
	Password  string             `db:"password"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

type DepartmentStorage interface {
	CreateDepartment(ctx context.Context, dept Department) (Department, error)
	GetDepartment(ctx context.Context, id int64) (Department, error)
	UpdateDepartment(ctx context.Context, dept Department) (Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
	ListDepartments(ctx context.Context) ([]Department, error)
}

type SupplierStorage interface {
	CreateSupplier(ctx context.Context, supplier Supplier) (Supplier, error)
	GetSupplier(ctx context.Context, id int64) (Supplier, error)
	UpdateSupplier(ctx context.Context, supplier Supplier) (Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
	ListSuppliers(ctx context.Context) ([]Supplier, error)
}

type UnitStorage interface {
	CreateUnit(ctx context.Context, unit Unit) (Unit, error)
	GetUnit(ctx context.Context, id int64) (Unit, error)
	UpdateUnit(ctx context.Context, unit Unit) (Unit, error)
	DeleteUnit(ctx context.Context, id int64) error
	ListUnits(ctx context.Context) ([]Unit, error)
}

type ArticleStorage interface {
	CreateArticle(ctx context.Context, article Article) (Article, error)
	GetArticle(ctx context.Context, id int64) (Article, error)
	UpdateArticle(ctx context.Context, article Article) (Article, error)
	DeleteArticle(ctx context.Context, id int64) error
	ListArticles(ctx context.Context) ([]Article, error)
}

type UserStorage interface {
	CreateUser(ctx context.Context, login, password string) (int64, error)
	GetUserByLogin(ctx context.Context, login string) (User, error)
}
