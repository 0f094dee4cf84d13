package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderListItem is an order as shown in lists. Dates are calendar days after
// the display offset, see kernel.ShiftedISODate.
type OrderListItem struct {
	ID           int64   `json:"id"`
	FullName     string  `json:"fullName"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Driver       *string `json:"driver"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	DeliveryDate *string `json:"deliveryDate"`
}

// OrderDetails is a single order with its line items and product images.
type OrderDetails struct {
	ID            int64              `json:"id"`
	FullName      string             `json:"fullName"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	Driver        *string            `json:"driver"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
	FormattedDate string             `json:"formattedDate"`
	DeliveryDate  *string            `json:"deliveryDate"`
	OrderProducts []OrderDetailsItem `json:"orderProducts"`
}

// OrderDetailsItem is one line item of OrderDetails.
type OrderDetailsItem struct {
	Quantity int         `json:"quantity"`
	Size     string      `json:"size"`
	Product  ProductView `json:"product"`
}

// ProductView is a catalogue product. Images is only filled by single-product reads.
type ProductView struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Images      []string        `json:"images,omitempty"`
}

// CustomerView aggregates the orders placed from one phone number. Name and
// address come from the most recent order.
type CustomerView struct {
	Phone       string    `json:"phone"`
	FullName    string    `json:"fullName"`
	Address     string    `json:"address"`
	OrdersCount int64     `json:"ordersCount"`
	LastOrderAt time.Time `json:"lastOrderAt"`
}

// CustomerDetails is a customer summary with its orders, newest first.
type CustomerDetails struct {
	CustomerView
	Orders []OrderListItem `json:"orders"`
}

// UserView is a back-office user.
type UserView struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DriverView is a driver with its availability.
type DriverView struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}
