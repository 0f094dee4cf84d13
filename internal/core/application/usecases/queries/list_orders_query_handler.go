package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order pages from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order lists.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the orders matching the filter sorted by createdAt
// descending, with dates projected by kernel.ShiftedISODate.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderListItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := applyOrderFilter(selectOrders(h.db.WithContext(ctx)), query.Filter())

	var rows []orderRow
	err := tx.
		Order("o.created_at DESC").
		Order("o.id DESC").
		Limit(query.Page().Take).
		Offset(query.Page().Skip).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return listItems(rows), nil
}

func applyOrderFilter(tx *gorm.DB, f OrderFilter) *gorm.DB {
	if f.Status != "" {
		tx = tx.Where("o.status = ?", f.Status)
	}
	if f.Driver != "" {
		tx = tx.Where("d.full_name = ?", f.Driver)
	}
	if f.Phone != "" {
		tx = tx.Where("o.phone = ?", f.Phone)
	}
	if f.FullName != "" {
		tx = tx.Where("o.full_name ILIKE ?", likePattern(f.FullName))
	}
	if f.Address != "" {
		tx = tx.Where("o.address ILIKE ?", likePattern(f.Address))
	}
	return tx
}
