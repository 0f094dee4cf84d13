// Package driver provides the Driver aggregate: a delivery agent with a binary
// availability state.
//
// Key business rules:
//   - The full name is the lookup key used by clients and is unique
//   - A driver is either FREE or on DELIVERY
//   - A driver on DELIVERY serves exactly one in-flight order
//   - FREE -> DELIVERY happens only when an order is created for the driver
//   - DELIVERY -> FREE happens only when that order is completed, or when the
//     reconciliation job finds no in-flight order for the driver
//
// The aggregate validates transitions in memory; persistence adapters must
// write them with a compare-and-set on the previous status so concurrent
// requests cannot both claim the same driver.
package driver
