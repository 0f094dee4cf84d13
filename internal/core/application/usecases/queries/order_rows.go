package queries

import (
	"time"

	"commerce/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// orderRow is the flat shape shared by every order read.
type orderRow struct {
	ID           int64
	FullName     string
	Phone        string
	Address      string
	Driver       *string
	Status       string
	CreatedAt    time.Time
	DeliveryDate *time.Time
}

// selectOrders starts an order read with the driver name joined in.
func selectOrders(db *gorm.DB) *gorm.DB {
	return db.Table("orders AS o").
		Select("o.id, o.full_name, o.phone, o.address, d.full_name AS driver, o.status, o.created_at, o.delivery_date").
		Joins("LEFT JOIN drivers AS d ON d.id = o.driver_id")
}

func (r orderRow) listItem() OrderListItem {
	return OrderListItem{
		ID:           r.ID,
		FullName:     r.FullName,
		Phone:        r.Phone,
		Address:      r.Address,
		Driver:       r.Driver,
		Status:       r.Status,
		CreatedAt:    kernel.ShiftedISODate(r.CreatedAt),
		DeliveryDate: kernel.ShiftedISODatePtr(r.DeliveryDate),
	}
}

func listItems(rows []orderRow) []OrderListItem {
	items := make([]OrderListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.listItem())
	}
	return items
}
