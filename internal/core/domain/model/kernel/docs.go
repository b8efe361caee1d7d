// Package kernel holds the value objects shared by every aggregate of the
// purchasing domain.
//
// The package includes:
//   - UUID: identifier of orders, line items, movements, catalog entries and users
//   - Money: a non-negative amount with at most two fraction digits
//
// Zero values of both types are invalid and fail Validate, so a value that
// skipped its constructor is caught at the aggregate boundary.
package kernel
