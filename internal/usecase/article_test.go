package usecase

import (
	"context"
	"testing"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/storage"
	"github.com/AlenaMolokova/masterdata/internal/testutils"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestArticleCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		input       models.Article
		setupMocks  func(*testutils.MockArticleStorage)
		expectedErr error
	}{
		{
			name: "успешное создание",
			input: models.Article{
				Description: "Tornillo 3/8",
				UnitID:      1,
				SupplierID:  pgtype.Int8{Int64: 2, Valid: true},
				Stock:       decimal.NewFromInt(10),
				UnitCost:    decimal.RequireFromString("2.50"),
			},
			setupMocks: func(as *testutils.MockArticleStorage) {
				as.On("CreateArticle", mock.Anything, mock.MatchedBy(func(a models.Article) bool {
					return a.Status == "Activo" && a.UnitID == 1 && a.Stock.Equal(decimal.NewFromInt(10))
				})).Return(models.Article{ID: 1}, nil)
			},
		},
		{
			name:        "нет единицы измерения",
			input:       models.Article{Description: "Tornillo"},
			setupMocks:  func(as *testutils.MockArticleStorage) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "отрицательный остаток",
			input:       models.Article{Description: "Tornillo", UnitID: 1, Stock: decimal.NewFromInt(-1)},
			setupMocks:  func(as *testutils.MockArticleStorage) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "отрицательная цена",
			input:       models.Article{Description: "Tornillo", UnitID: 1, UnitCost: decimal.NewFromFloat(-0.01)},
			setupMocks:  func(as *testutils.MockArticleStorage) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "остаток не помещается в столбец",
			input:       models.Article{Description: "Tornillo", UnitID: 1, Stock: decimal.RequireFromString("1e13")},
			setupMocks:  func(as *testutils.MockArticleStorage) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "цена не помещается в столбец",
			input:       models.Article{Description: "Tornillo", UnitID: 1, UnitCost: decimal.New(1, 12)},
			setupMocks:  func(as *testutils.MockArticleStorage) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "лишние знаки после запятой в цене",
			input:       models.Article{Description: "Tornillo", UnitID: 1, UnitCost: decimal.RequireFromString("2.505")},
			setupMocks:  func(as *testutils.MockArticleStorage) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:  "нули в конце не считаются лишними знаками",
			input: models.Article{Description: "Tornillo", UnitID: 1, Stock: decimal.RequireFromString("9999999999.12340"), UnitCost: decimal.RequireFromString("2.500")},
			setupMocks: func(as *testutils.MockArticleStorage) {
				as.On("CreateArticle", mock.Anything, mock.AnythingOfType("models.Article")).Return(models.Article{ID: 2}, nil)
			},
		},
		{
			name:  "неизвестная единица",
			input: models.Article{Description: "Tornillo", UnitID: 99},
			setupMocks: func(as *testutils.MockArticleStorage) {
				as.On("CreateArticle", mock.Anything, mock.AnythingOfType("models.Article")).
					Return(models.Article{}, storage.ErrInvalidReference)
			},
			expectedErr: storage.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as := &testutils.MockArticleStorage{}
			tt.setupMocks(as)

			_, err := NewArticleUseCase(as, zap.NewNop()).Create(ctx, tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			as.AssertExpectations(t)
		})
	}
}
