package queries

import (
	"context"

	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProductQueryHandler struct {
	db     *gorm.DB
	images ports.ImageStore
}

func NewGetProductQueryHandler(db *gorm.DB, images ports.ImageStore) GetProductQueryHandler {
	return GetProductQueryHandler{db: db, images: images}
}

// Handle returns errs.ErrObjectNotFound for an unknown product.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var view ProductView
	result := h.db.WithContext(ctx).
		Table("products").
		Select(productColumns).
		Where("id = ?", query.ProductID()).
		Limit(1).
		Scan(&view)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("product", query.ProductID())
	}

	urls, err := h.images.GetImageURLs(ctx, product.ImageKey(view.ID))
	if err != nil {
		return nil, err
	}
	view.Images = urls

	return &view, nil
}
