// Package services provides domain services that orchestrate business operations
// across multiple aggregates of the order management system.
//
// The package includes:
//   - DriverDispatcher: binds a driver to an order and releases it when the
//     order is completed, keeping the Order and Driver state machines in step
package services
