package order

import (
	"fmt"

	"purchasing/internal/pkg/errs"
)

// Status is the lifecycle state of an order header. Transitions between the
// three valid values are unrestricted; every change is recorded as a movement.
type Status int

const (
	// Unknown (0) catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a new order.
	Pending

	// InProgress means the supplier is working on the order.
	InProgress

	// Finalized means the order is closed. Finalized orders are never overdue.
	Finalized
)

type statusNames struct {
	code  string
	name  string
	label string
}

//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
var statuses = map[Status]statusNames{
	Pending:    {code: "pending", name: "Pending", label: "Pending"},
	InProgress: {code: "in_progress", name: "InProgress", label: "In Progress"},
	Finalized:  {code: "finalized", name: "Finalized", label: "Finalized"},
}

// ParseStatus maps a persisted or API code ("pending", "in_progress", "finalized")
// to a Status.
func ParseStatus(code string) (Status, error) {
	for s, n := range statuses {
		if n.code == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate rejects Unknown and any value outside the declared constants.
func (s Status) Validate() error {
	if _, ok := statuses[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the identifier-style name, e.g. "InProgress".
func (s Status) String() string {
	if n, ok := statuses[s]; ok {
		return n.name
	}
	return "Unknown"
}

// Code returns the storage and API code, e.g. "in_progress".
func (s Status) Code() string {
	return statuses[s].code
}

// Label returns the human label used in movement notes, e.g. "In Progress".
func (s Status) Label() string {
	if n, ok := statuses[s]; ok {
		return n.label
	}
	return "Unknown"
}
