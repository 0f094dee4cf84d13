package queries

import (
	"errors"
	"strings"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
)

// ListCustomersQuery retrieves customers derived from orders, grouped by phone.
type ListCustomersQuery struct {
	page Page

	guard guard.ConstructorGuard
}

func NewListCustomersQuery(page Page) ListCustomersQuery {
	return ListCustomersQuery{page: page, guard: guard.NewConstructorGuard()}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

func (q ListCustomersQuery) Page() Page { return q.page }

// GetCustomerQuery retrieves one customer and its orders by phone.
type GetCustomerQuery struct {
	phone string

	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(phone string) (GetCustomerQuery, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return GetCustomerQuery{}, errs.NewValueIsRequiredError("phone")
	}
	return GetCustomerQuery{phone: phone, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) Phone() string { return q.phone }
