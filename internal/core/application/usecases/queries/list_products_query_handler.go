package queries

import (
	"context"

	"gorm.io/gorm"
)

const productColumns = "id, name, description, category, price, created_at, updated_at"

// ListProductsQueryHandler reads product pages. Images are not resolved for
// lists; use GetProductQueryHandler for a single product.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("products").Select(productColumns)
	if f := query.Filter(); f.Category != "" {
		tx = tx.Where("category = ?", f.Category)
	}
	if f := query.Filter(); f.Name != "" {
		tx = tx.Where("name ILIKE ?", likePattern(f.Name))
	}

	products := make([]ProductView, 0)
	err := tx.
		Order("created_at DESC").
		Order("id DESC").
		Limit(query.Page().Take).
		Offset(query.Page().Skip).
		Scan(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}
