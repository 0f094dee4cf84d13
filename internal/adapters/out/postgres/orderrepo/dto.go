// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"commerce/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status, driver and phone, which are the exact-match list filters.
type OrderDTO struct {
	ID            int64             `gorm:"primaryKey;autoIncrement"`
	FullName      string            `gorm:"type:varchar(255);not null"`
	Phone         string            `gorm:"type:varchar(64);not null;index"`
	Address       string            `gorm:"type:varchar(512);not null"`
	DriverID      *int64            `gorm:"index"`
	Status        string            `gorm:"type:varchar(16);not null;index"`
	CreatedAt     time.Time         `gorm:"not null;index"`
	DeliveryDate  *time.Time        `gorm:"column:delivery_date"`
	OrderProducts []OrderProductDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderProductDTO is one line item. The serial ID preserves insertion order.
type OrderProductDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"not null;index"`
	ProductID int64  `gorm:"not null;index"`
	Quantity  int    `gorm:"not null"`
	Size      string `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for order line items.
func (OrderProductDTO) TableName() string {
	return "order_products"
}

// fromDomain converts an order aggregate to its database representation,
// line items included.
func fromDomain(o *order.Order) OrderDTO {
	items := o.Products()
	products := make([]OrderProductDTO, 0, len(items))
	for _, item := range items {
		products = append(products, OrderProductDTO{
			OrderID:   o.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Size:      item.Size(),
		})
	}

	return OrderDTO{
		ID:            o.ID(),
		FullName:      o.FullName(),
		Phone:         o.Phone(),
		Address:       o.Address(),
		DriverID:      o.Driver(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		DeliveryDate:  o.DeliveryDate(),
		OrderProducts: products,
	}
}

// scalarColumns returns the columns Update writes. Line items are excluded.
func scalarColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"full_name":     dto.FullName,
		"phone":         dto.Phone,
		"address":       dto.Address,
		"driver_id":     dto.DriverID,
		"status":        dto.Status,
		"created_at":    dto.CreatedAt,
		"delivery_date": dto.DeliveryDate,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	products := make([]order.OrderProduct, 0, len(dto.OrderProducts))
	for _, item := range dto.OrderProducts {
		p, itemErr := order.NewOrderProduct(item.ProductID, item.Quantity, item.Size)
		if itemErr != nil {
			return nil, itemErr
		}
		products = append(products, p)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.FullName,
		dto.Phone,
		dto.Address,
		dto.DriverID,
		status,
		dto.CreatedAt,
		dto.DeliveryDate,
		products,
	)
}
