// Package movement models the append-only audit trail of an order.
//
// A Movement is written once when an order is created and at most once per
// edit. Edits are classified by comparing the status read before the edit
// with the status after it: a difference is a StatusChange, anything else is
// a DataChange. Movements are never updated or removed by the application;
// they disappear only together with their order.
package movement
