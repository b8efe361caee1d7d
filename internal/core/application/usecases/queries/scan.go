package queries

import (
	"time"

	"purchasing/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// money converts a scanned amount. Sums computed by SQLite come back as
// floating point, so the value is rounded to the money scale first.
func money(d decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(d.Round(kernel.MoneyScale))
}

// dateOnly drops whatever time and zone the driver attached to a DATE column.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
