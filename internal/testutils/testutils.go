package testutils

import (
	"context"
	"encoding/json"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/session"
	"github.com/stretchr/testify/mock"
)

type MockDepartmentStorage struct {
	mock.Mock
}

func (m *MockDepartmentStorage) CreateDepartment(ctx context.Context, dept models.Department) (models.Department, error) {
	args := m.Called(ctx, dept)
	return args.Get(0).(models.Department), args.Error(1)
}

func (m *MockDepartmentStorage) GetDepartment(ctx context.Context, id int64) (models.Department, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Department), args.Error(1)
}

func (m *MockDepartmentStorage) UpdateDepartment(ctx context.Context, dept models.Department) (models.Department, error) {
	args := m.Called(ctx, dept)
	return args.Get(0).(models.Department), args.Error(1)
}

func (m *MockDepartmentStorage) DeleteDepartment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDepartmentStorage) ListDepartments(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Department), args.Error(1)
}

type MockSupplierStorage struct {
	mock.Mock
}

func (m *MockSupplierStorage) CreateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	args := m.Called(ctx, supplier)
	return args.Get(0).(models.Supplier), args.Error(1)
}

func (m *MockSupplierStorage) GetSupplier(ctx context.Context, id int64) (models.Supplier, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Supplier), args.Error(1)
}

func (m *MockSupplierStorage) UpdateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	args := m.Called(ctx, supplier)
	return args.Get(0).(models.Supplier), args.Error(1)
}

func (m *MockSupplierStorage) DeleteSupplier(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierStorage) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Supplier), args.Error(1)
}

type MockUnitStorage struct {
	mock.Mock
}

func (m *MockUnitStorage) CreateUnit(ctx context.Context, unit models.Unit) (models.Unit, error) {
	args := m.Called(ctx, unit)
	return args.Get(0).(models.Unit), args.Error(1)
}

func (m *MockUnitStorage) GetUnit(ctx context.Context, id int64) (models.Unit, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Unit), args.Error(1)
}

func (m *MockUnitStorage) UpdateUnit(ctx context.Context, unit models.Unit) (models.Unit, error) {
	args := m.Called(ctx, unit)
	return args.Get(0).(models.Unit), args.Error(1)
}

func (m *MockUnitStorage) DeleteUnit(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUnitStorage) ListUnits(ctx context.Context) ([]models.Unit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Unit), args.Error(1)
}

type MockArticleStorage struct {
	mock.Mock
}

func (m *MockArticleStorage) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	args := m.Called(ctx, article)
	return args.Get(0).(models.Article), args.Error(1)
}

func (m *MockArticleStorage) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Article), args.Error(1)
}

func (m *MockArticleStorage) UpdateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	args := m.Called(ctx, article)
	return args.Get(0).(models.Article), args.Error(1)
}

func (m *MockArticleStorage) DeleteArticle(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleStorage) ListArticles(ctx context.Context) ([]models.Article, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Article), args.Error(1)
}

type MockUserStorage struct {
	mock.Mock
}

func (m *MockUserStorage) CreateUser(ctx context.Context, login, password string) (int64, error) {
	args := m.Called(ctx, login, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStorage) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(models.User), args.Error(1)
}

type MockIdentityValidator struct {
	mock.Mock
}

func (m *MockIdentityValidator) ValidateIdentityNumber(number string) bool {
	args := m.Called(number)
	return args.Bool(0)
}

type MockAccountingClient struct {
	mock.Mock
}

func (m *MockAccountingClient) ListAccounts(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	return rawMessage(args.Get(0)), args.Error(1)
}

func (m *MockAccountingClient) ListEntries(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	return rawMessage(args.Get(0)), args.Error(1)
}

func (m *MockAccountingClient) CreateEntry(ctx context.Context, entry models.AccountingEntry) (json.RawMessage, error) {
	args := m.Called(ctx, entry)
	return rawMessage(args.Get(0)), args.Error(1)
}

func rawMessage(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	return v.(json.RawMessage)
}

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Issue(userID int64, login string) (string, *session.Claims, error) {
	args := m.Called(userID, login)
	claims, _ := args.Get(1).(*session.Claims)
	return args.String(0), claims, args.Error(2)
}

func (m *MockSessions) Revoke(ctx context.Context, claims *session.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}
