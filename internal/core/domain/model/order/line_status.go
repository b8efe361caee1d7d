package order

import (
	"fmt"

	"purchasing/internal/pkg/errs"
)

// LineStatus is the status of a single line item, independent of the order status.
type LineStatus int

const (
	LineUnknown LineStatus = iota
	LinePending
	LineApproved
	LineRejected
	LineDelivered
)

//nolint:exhaustive // LineUnknown is intentionally excluded as it's invalid
var lineStatusCodes = map[LineStatus]string{
	LinePending:   "pending",
	LineApproved:  "approved",
	LineRejected:  "rejected",
	LineDelivered: "delivered",
}

// ParseLineStatus maps a code such as "approved" to a LineStatus.
// The empty string yields LinePending, the default of a new line.
func ParseLineStatus(code string) (LineStatus, error) {
	if code == "" {
		return LinePending, nil
	}
	for s, c := range lineStatusCodes {
		if c == code {
			return s, nil
		}
	}
	return LineUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid line status", code))
}

func (s LineStatus) Validate() error {
	if _, ok := lineStatusCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid line status", s))
	}
	return nil
}

func (s LineStatus) Code() string {
	return lineStatusCodes[s]
}

func (s LineStatus) String() string {
	if c, ok := lineStatusCodes[s]; ok {
		return c
	}
	return "unknown"
}
