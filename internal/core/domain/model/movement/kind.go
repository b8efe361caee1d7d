package movement

import (
	"fmt"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"
)

// Kind classifies a movement.
type Kind int

const (
	KindUnknown Kind = iota
	Creation
	StatusChange
	DataChange
)

//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
var kindCodes = map[Kind]string{
	Creation:     "creation",
	StatusChange: "status_change",
	DataChange:   "data_change",
}

// Classify returns StatusChange when the status moved and DataChange otherwise.
// before must be read from storage before the edit is applied.
func Classify(before, after order.Status) Kind {
	if before != after {
		return StatusChange
	}
	return DataChange
}

func ParseKind(code string) (Kind, error) {
	for k, c := range kindCodes {
		if c == code {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid movement kind", code))
}

func (k Kind) Validate() error {
	if _, ok := kindCodes[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid movement kind", k))
	}
	return nil
}

func (k Kind) Code() string {
	return kindCodes[k]
}

func (k Kind) String() string {
	switch k {
	case Creation:
		return "Creation"
	case StatusChange:
		return "StatusChange"
	case DataChange:
		return "DataChange"
	case KindUnknown:
	}
	return "Unknown"
}
