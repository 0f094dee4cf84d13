package queries

import (
	"errors"
	"strings"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// OrderFilter narrows an order list. Empty fields do not filter.
//   - Status, Driver (driver full name) and Phone match exactly
//   - FullName and Address match a case-insensitive substring
type OrderFilter struct {
	Status   string
	Driver   string
	Phone    string
	FullName string
	Address  string
}

// ListOrdersQuery retrieves a page of orders, newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery(OrderFilter{Status: "RECEIVED"}, ParsePage(c.QueryParam("take"), c.QueryParam("skip")))
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter OrderFilter
	page   Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery trims the filter and rejects an unknown status.
func NewListOrdersQuery(filter OrderFilter, page Page) (ListOrdersQuery, error) {
	filter = OrderFilter{
		Status:   strings.TrimSpace(filter.Status),
		Driver:   strings.TrimSpace(filter.Driver),
		Phone:    strings.TrimSpace(filter.Phone),
		FullName: strings.TrimSpace(filter.FullName),
		Address:  strings.TrimSpace(filter.Address),
	}

	if filter.Status != "" {
		status, err := order.ParseStatus(filter.Status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		filter.Status = status.String()
	}

	return ListOrdersQuery{
		filter: filter,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() OrderFilter { return q.filter }

func (q ListOrdersQuery) Page() Page { return q.page }
