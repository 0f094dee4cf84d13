package queries

import (
	"errors"
	"strings"

	"commerce/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ProductFilter narrows a product list. Category matches exactly, Name is a
// case-insensitive substring.
type ProductFilter struct {
	Category string
	Name     string
}

// ListProductsQuery retrieves a page of catalogue products, newest first.
type ListProductsQuery struct {
	filter ProductFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewListProductsQuery(filter ProductFilter, page Page) ListProductsQuery {
	return ListProductsQuery{
		filter: ProductFilter{
			Category: strings.TrimSpace(filter.Category),
			Name:     strings.TrimSpace(filter.Name),
		},
		page:  page,
		guard: guard.NewConstructorGuard(),
	}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) Filter() ProductFilter { return q.filter }

func (q ListProductsQuery) Page() Page { return q.page }
