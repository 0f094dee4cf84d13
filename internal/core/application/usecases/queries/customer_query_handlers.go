package queries

import (
	"context"
	"fmt"

	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// customerSummarySQL groups orders by phone and takes the name and address
// of the latest order. %s is replaced with an optional WHERE clause for the
// grouped subquery.
const customerSummarySQL = `
	SELECT
		c.phone,
		latest.full_name,
		latest.address,
		c.orders_count,
		c.last_order_at
	FROM (
		SELECT phone, COUNT(*) AS orders_count, MAX(created_at) AS last_order_at
		FROM orders
		%s
		GROUP BY phone
	) c
	CROSS JOIN LATERAL (
		SELECT o.full_name, o.address
		FROM orders o
		WHERE o.phone = c.phone
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT 1
	) latest
`

// ListCustomersQueryHandler reads customer pages, most recent buyer first.
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]CustomerView, 0)
	err := h.db.WithContext(ctx).Raw(
		customerSQL("")+`
	ORDER BY c.last_order_at DESC, c.phone
	LIMIT ? OFFSET ?`,
		query.Page().Take, query.Page().Skip,
	).Scan(&customers).Error
	if err != nil {
		return nil, err
	}

	return customers, nil
}

// GetCustomerQueryHandler reads one customer with every order placed from
// its phone, newest first.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when no order was placed from the phone.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (*CustomerDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var summary CustomerView
	result := db.Raw(customerSQL("WHERE phone = ?"), query.Phone()).Scan(&summary)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("customer", query.Phone())
	}

	var rows []orderRow
	err := selectOrders(db).
		Where("o.phone = ?", query.Phone()).
		Order("o.created_at DESC").
		Order("o.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return &CustomerDetails{CustomerView: summary, Orders: listItems(rows)}, nil
}

func customerSQL(where string) string {
	return fmt.Sprintf(customerSummarySQL, where)
}
