package usecase

import (
	"context"
	"fmt"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Limits of the NUMERIC(14,4) stock and NUMERIC(14,2) unit_cost columns.
var (
	maxStock    = decimal.New(1, 10)
	maxUnitCost = decimal.New(1, 12)
)

const (
	stockScale    = 4
	unitCostScale = 2
)

func checkAmount(field string, value, limit decimal.Decimal, scale int32) error {
	if value.IsNegative() {
		return invalidInput("%s must not be negative", field)
	}
	if value.GreaterThanOrEqual(limit) {
		return invalidInput("%s must be less than %s", field, limit.String())
	}
	if !value.Equal(value.Truncate(scale)) {
		return invalidInput("%s must have at most %d decimal places", field, scale)
	}
	return nil
}

type ArticleUseCase struct {
	storage models.ArticleStorage
	log     *zap.Logger
}

func NewArticleUseCase(storage models.ArticleStorage, log *zap.Logger) *ArticleUseCase {
	return &ArticleUseCase{storage: storage, log: log}
}

func (uc *ArticleUseCase) prepare(article models.Article) (models.Article, error) {
	description, err := requireText("description", article.Description, 200)
	if err != nil {
		return article, err
	}
	if article.UnitID <= 0 {
		return article, invalidInput("unit_id is required")
	}
	if article.SupplierID.Valid && article.SupplierID.Int64 <= 0 {
		return article, invalidInput("supplier_id must be positive")
	}
	if err := checkAmount("stock", article.Stock, maxStock, stockScale); err != nil {
		return article, err
	}
	if err := checkAmount("unit_cost", article.UnitCost, maxUnitCost, unitCostScale); err != nil {
		return article, err
	}
	status, err := normalizeStatus(article.Status)
	if err != nil {
		return article, err
	}
	article.Description = description
	article.Status = status
	return article, nil
}

func (uc *ArticleUseCase) Create(ctx context.Context, article models.Article) (models.Article, error) {
	article, err := uc.prepare(article)
	if err != nil {
		return models.Article{}, err
	}
	created, err := uc.storage.CreateArticle(ctx, article)
	if err != nil {
		return models.Article{}, fmt.Errorf("failed to create article: %w", err)
	}
	uc.log.Info("article created", zap.Int64("id", created.ID), zap.String("description", created.Description))
	return created, nil
}

func (uc *ArticleUseCase) Get(ctx context.Context, id int64) (models.Article, error) {
	article, err := uc.storage.GetArticle(ctx, id)
	if err != nil {
		return models.Article{}, fmt.Errorf("failed to get article %d: %w", id, err)
	}
	return article, nil
}

func (uc *ArticleUseCase) Update(ctx context.Context, article models.Article) (models.Article, error) {
	article, err := uc.prepare(article)
	if err != nil {
		return models.Article{}, err
	}
	updated, err := uc.storage.UpdateArticle(ctx, article)
	if err != nil {
		return models.Article{}, fmt.Errorf("failed to update article %d: %w", article.ID, err)
	}
	return updated, nil
}

func (uc *ArticleUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.storage.DeleteArticle(ctx, id); err != nil {
		return fmt.Errorf("failed to delete article %d: %w", id, err)
	}
	uc.log.Info("article deleted", zap.Int64("id", id))
	return nil
}

func (uc *ArticleUseCase) List(ctx context.Context) ([]models.Article, error) {
	articles, err := uc.storage.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}
