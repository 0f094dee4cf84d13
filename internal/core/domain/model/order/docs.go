// Package order provides the Order aggregate of the order management system:
// the customer request tying one or more products to delivery details.
//
// The package includes:
//   - Order: the aggregate root holding customer fields, the optional driver
//     reference, the lifecycle status, creation and delivery timestamps and the
//     owned line items
//   - OrderProduct: a line item binding a product to the order with a quantity and a size
//   - Status: the lifecycle state machine
//
// Key business rules:
//   - Orders are created in RECEIVED status with at least one line item
//   - Full name, phone and address are mandatory and never blank
//   - Intermediate statuses are freely settable by the caller
//   - COMPLETED is terminal; no status change is accepted afterwards
//   - Line items are owned by the order and are never changed after creation
package order
