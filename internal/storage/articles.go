package storage

import (
	"context"

	"github.com/AlenaMolokova/masterdata/internal/models"
)

const articleColumns = `id, description, unit_id, supplier_id, stock, unit_cost, status, created_at, updated_at`

func (s *Storage) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	var created models.Article
	err := s.db.GetContext(ctx, &created,
		`INSERT INTO articles (description, unit_id, supplier_id, stock, unit_cost, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+articleColumns,
		article.Description, article.UnitID, article.SupplierID, article.Stock, article.UnitCost, article.Status)
	return created, classify(err)
}

func (s *Storage) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	var article models.Article
	err := s.db.GetContext(ctx, &article,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	return article, classify(err)
}

func (s *Storage) UpdateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	var updated models.Article
	err := s.db.GetContext(ctx, &updated,
		`UPDATE articles SET description = $1, unit_id = $2, supplier_id = $3, stock = $4, unit_cost = $5,
		status = $6, updated_at = now() WHERE id = $7 RETURNING `+articleColumns,
		article.Description, article.UnitID, article.SupplierID, article.Stock, article.UnitCost,
		article.Status, article.ID)
	return updated, classify(err)
}

func (s *Storage) DeleteArticle(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM articles WHERE id = $1`, id)
}

func (s *Storage) ListArticles(ctx context.Context) ([]models.Article, error) {
	articles := []models.Article{}
	err := s.db.SelectContext(ctx, &articles,
		`SELECT `+articleColumns+` FROM articles ORDER BY id`)
	if err != nil {
		return nil, classify(err)
	}
	return articles, nil
}
