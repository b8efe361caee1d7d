// Package catalog holds the reference entities an order points at: suppliers,
// fleets, item categories and items.
//
// The entities share one shape, an Entry with an owner and a set of text
// fields, and differ only by their Policy: which fields are editable, which
// are required, which reference other catalog entries, and whether ownership
// is enforced on mutation. One generic handler serves every kind by looking
// its policy up in a fixed table.
package catalog
