// Package productrepo provides GORM persistence for catalogue products.
package productrepo

import (
	"time"

	"commerce/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
// Images are not stored here; see product.ImageKey.
type ProductDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(255);not null;index"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(128);index"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		dto.ID,
		dto.Name,
		dto.Description,
		dto.Category,
		dto.Price,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
