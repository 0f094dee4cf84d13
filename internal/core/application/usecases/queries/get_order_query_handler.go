package queries

import (
	"context"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order. Product images are resolved
// through the image store under product.ImageKey, once per distinct product.
// Dates are formatted day/month/year in the display location.
type GetOrderQueryHandler struct {
	db      *gorm.DB
	images  ports.ImageStore
	display *time.Location
}

// NewGetOrderQueryHandler creates a handler for order details. A nil
// location formats dates in UTC.
func NewGetOrderQueryHandler(db *gorm.DB, images ports.ImageStore, display *time.Location) GetOrderQueryHandler {
	if display == nil {
		display = time.UTC
	}
	return GetOrderQueryHandler{db: db, images: images, display: display}
}

type orderItemRow struct {
	Quantity    int
	Size        string
	ProductID   int64
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Handle returns errs.ErrObjectNotFound when no order has the requested ID.
// Database and image store failures are returned as they are.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var row orderRow
	result := selectOrders(db).Where("o.id = ?", query.OrderID()).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	var items []orderItemRow
	err := db.Raw(`
		SELECT
			op.quantity,
			op.size,
			p.id AS product_id,
			p.name,
			p.description,
			p.category,
			p.price,
			p.created_at,
			p.updated_at
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = ?
		ORDER BY op.id
	`, query.OrderID()).Scan(&items).Error
	if err != nil {
		return nil, err
	}

	details := &OrderDetails{
		ID:            row.ID,
		FullName:      row.FullName,
		Phone:         row.Phone,
		Address:       row.Address,
		Driver:        row.Driver,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt,
		FormattedDate: kernel.LocaleDate(row.CreatedAt, h.display),
		DeliveryDate:  kernel.LocaleDatePtr(row.DeliveryDate, h.display),
		OrderProducts: make([]OrderDetailsItem, 0, len(items)),
	}

	images := make(map[int64][]string, len(items))
	for _, item := range items {
		urls, ok := images[item.ProductID]
		if !ok {
			urls, err = h.images.GetImageURLs(ctx, product.ImageKey(item.ProductID))
			if err != nil {
				return nil, fmt.Errorf("product %d images: %w", item.ProductID, err)
			}
			images[item.ProductID] = urls
		}

		details.OrderProducts = append(details.OrderProducts, OrderDetailsItem{
			Quantity: item.Quantity,
			Size:     item.Size,
			Product: ProductView{
				ID:          item.ProductID,
				Name:        item.Name,
				Description: item.Description,
				Category:    item.Category,
				Price:       item.Price,
				CreatedAt:   item.CreatedAt,
				UpdatedAt:   item.UpdatedAt,
				Images:      urls,
			},
		})
	}

	return details, nil
}
