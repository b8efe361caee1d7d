// Package order provides the purchase order aggregate: the Order header and
// the LineItem entries that belong to it.
//
// The package includes:
//   - Order: the aggregate root (supplier, description, dates, status, owner, total)
//   - LineItem: one item/quantity/price entry of an order
//   - Status and LineStatus: the independent status sets of header and lines
//
// Key business rules:
//   - An order always has a supplier, a non-blank description and an owner
//   - The creation timestamp is set once and never changes
//   - The total is derived from the persisted line items and is never set by callers
//     other than the recomputation step
//   - A line item has quantity >= 1 and unit price >= 0.01
//   - Status values are not a state machine: any valid status may follow any other
package order
