// Package services provides domain services of the purchasing system: business
// logic that works over several entities and does not belong to one of them.
//
// The package includes:
//   - OrderTotalizer: derives an order total from its line items
package services
