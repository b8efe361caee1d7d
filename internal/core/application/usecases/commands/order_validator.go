package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/core/ports"

	"github.com/shopspring/decimal"
)

// DateLayouts are the accepted expected-delivery formats, tried in order.
var DateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

const (
	msgRequired      = "This field is required."
	msgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
	msgInvalidDate   = "Enter a valid date."
	msgMinQuantity   = "Ensure this value is greater than or equal to 1."
	msgMaxQuantity   = "Ensure this value is less than or equal to 2147483647."
	msgInvalidNumber = "Enter a number."
	msgMinPrice      = "Ensure this value is greater than or equal to 0.01."
	msgPricePlaces   = "Ensure that there are no more than 2 decimal places."
	msgPriceDigits   = "Ensure that there are no more than 10 digits in total."
	msgUnknownLine   = "Line item does not belong to this order."
	msgDuplicateLine = "Line item appears more than once."
	msgAtLeastOne    = "Please submit at least 1 item."
)

// LineChange is a validated add or update.
type LineChange struct {
	ID        kernel.UUID
	ItemID    kernel.UUID
	FleetID   *kernel.UUID
	Status    order.LineStatus
	Quantity  int
	UnitPrice kernel.Money
}

// Submission is a validated, normalized order edit.
type Submission struct {
	SupplierID       kernel.UUID
	Description      string
	ExpectedDelivery *time.Time
	Status           order.Status

	Adds    []LineChange
	Updates []LineChange
	Deletes []kernel.UUID
}

// OrderValidator checks an order header and its line-item operations as one
// unit. It reads the catalog to check ownership and never writes.
type OrderValidator struct{}

func NewOrderValidator() OrderValidator {
	return OrderValidator{}
}

// Validate returns the normalized submission or a *ValidationErrors.
// existing holds the persisted lines of the order being edited, nil on create.
// statusRequired is true for edits; on create an empty status means Pending.
func (v OrderValidator) Validate(
	ctx context.Context,
	reader ports.CatalogReader,
	actor kernel.UUID,
	header HeaderInput,
	lines []LineInput,
	existing []*order.LineItem,
	statusRequired bool,
) (Submission, error) {
	report := newValidationErrors(len(lines))
	var sub Submission

	refs := newReferenceSet()
	supplierID, supplierOK := parseRequiredID(header.SupplierID, report.Header, "supplier_id")
	if supplierOK {
		refs.want(catalog.Supplier, supplierID)
	}

	sub.Description = strings.TrimSpace(header.Description)
	if sub.Description == "" {
		report.Header["description"] = msgRequired
	}

	if s := strings.TrimSpace(header.ExpectedDelivery); s != "" {
		d, err := ParseDate(s)
		if err != nil {
			report.Header["expected_delivery"] = msgInvalidDate
		} else {
			sub.ExpectedDelivery = &d
		}
	}

	switch code := strings.TrimSpace(header.Status); {
	case code == "" && statusRequired:
		report.Header["status"] = msgRequired
	case code == "":
		sub.Status = order.Pending
	default:
		status, err := order.ParseStatus(code)
		if err != nil {
			report.Header["status"] = fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", code)
		}
		sub.Status = status
	}

	known := make(map[kernel.UUID]struct{}, len(existing))
	for _, l := range existing {
		known[l.ID()] = struct{}{}
	}
	seen := make(map[kernel.UUID]struct{}, len(lines))

	type pendingLine struct {
		index  int
		change LineChange
		update bool
	}
	var pending []pendingLine

	for i, in := range lines {
		fieldErrs := report.Items[i]

		var id kernel.UUID
		hasID := strings.TrimSpace(in.ID) != ""
		if hasID {
			parsed, err := kernel.UUIDFromString(strings.TrimSpace(in.ID))
			switch {
			case err != nil || parsed.Validate() != nil:
				fieldErrs["id"] = msgUnknownLine
			case !isKnown(known, parsed):
				fieldErrs["id"] = msgUnknownLine
			case isKnown(seen, parsed):
				fieldErrs["id"] = msgDuplicateLine
			default:
				id = parsed
				seen[parsed] = struct{}{}
			}
		}

		if in.Delete {
			if hasID && len(fieldErrs) == 0 {
				sub.Deletes = append(sub.Deletes, id)
			}
			continue
		}

		change := LineChange{ID: id, Quantity: in.Quantity}

		if itemID, ok := parseRequiredID(in.ItemID, fieldErrs, "item_id"); ok {
			change.ItemID = itemID
			refs.want(catalog.Item, itemID)
		}

		if s := strings.TrimSpace(in.FleetID); s != "" {
			fleetID, err := kernel.OptionalUUID(s)
			if err != nil {
				fieldErrs["fleet_id"] = msgInvalidChoice
			} else {
				change.FleetID = fleetID
				refs.want(catalog.Fleet, *fleetID)
			}
		}

		status, err := order.ParseLineStatus(strings.TrimSpace(in.Status))
		if err != nil {
			fieldErrs["status"] = fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", in.Status)
		}
		change.Status = status

		switch {
		case in.Quantity < order.MinQuantity:
			fieldErrs["quantity"] = msgMinQuantity
		case in.Quantity > order.MaxQuantity:
			fieldErrs["quantity"] = msgMaxQuantity
		}

		if price, msg := parseUnitPrice(in.UnitPrice); msg != "" {
			fieldErrs["unit_price"] = msg
		} else {
			change.UnitPrice = price
		}

		pending = append(pending, pendingLine{index: i, change: change, update: hasID})
	}

	owned, err := refs.resolve(ctx, reader, actor)
	if err != nil {
		return Submission{}, err
	}

	if supplierOK && !owned.has(catalog.Supplier, supplierID) {
		report.Header["supplier_id"] = msgInvalidChoice
	}
	sub.SupplierID = supplierID

	for _, p := range pending {
		fieldErrs := report.Items[p.index]
		if p.change.ItemID.Validate() == nil && !owned.has(catalog.Item, p.change.ItemID) {
			fieldErrs["item_id"] = msgInvalidChoice
		}
		if p.change.FleetID != nil && !owned.has(catalog.Fleet, *p.change.FleetID) {
			fieldErrs["fleet_id"] = msgInvalidChoice
		}
		if len(fieldErrs) > 0 {
			continue
		}
		if p.update {
			sub.Updates = append(sub.Updates, p.change)
		} else {
			sub.Adds = append(sub.Adds, p.change)
		}
	}

	if surviving(existing, lines) < 1 {
		report.NonField = append(report.NonField, msgAtLeastOne)
	}

	if !report.Empty() {
		return Submission{}, report
	}
	return sub, nil
}

// surviving counts the lines left once the raw operations are applied. Rows
// that fail validation still count as intended, so one bad row does not also
// trigger the aggregate rule.
func surviving(existing []*order.LineItem, lines []LineInput) int {
	n := len(existing)
	for _, in := range lines {
		hasID := strings.TrimSpace(in.ID) != ""
		switch {
		case in.Delete && hasID:
			n--
		case !in.Delete && !hasID:
			n++
		}
	}
	return n
}

// ParseDate accepts any of DateLayouts.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range DateLayouts {
		d, err := time.Parse(layout, s)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseUnitPrice(raw string) (kernel.Money, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return kernel.Money{}, msgRequired
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return kernel.Money{}, msgInvalidNumber
	}
	if d.LessThan(decimal.New(1, -kernel.MoneyScale)) {
		return kernel.Money{}, msgMinPrice
	}
	if !d.Equal(d.Truncate(kernel.MoneyScale)) {
		return kernel.Money{}, msgPricePlaces
	}
	m, err := kernel.NewMoney(d)
	if err != nil {
		return kernel.Money{}, msgInvalidNumber
	}
	if m.Digits() > order.MaxPriceDigits {
		return kernel.Money{}, msgPriceDigits
	}
	return m, ""
}

func parseRequiredID(raw string, fieldErrs map[string]string, field string) (kernel.UUID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		fieldErrs[field] = msgRequired
		return kernel.UUID{}, false
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil || id.Validate() != nil {
		fieldErrs[field] = msgInvalidChoice
		return kernel.UUID{}, false
	}
	return id, true
}

func isKnown(set map[kernel.UUID]struct{}, id kernel.UUID) bool {
	_, ok := set[id]
	return ok
}

// referenceSet batches ownership lookups so each kind costs one query.
type referenceSet map[catalog.Kind][]kernel.UUID

func newReferenceSet() referenceSet {
	return referenceSet{}
}

func (r referenceSet) want(kind catalog.Kind, id kernel.UUID) {
	r[kind] = append(r[kind], id)
}

type ownedSet map[catalog.Kind]map[kernel.UUID]struct{}

func (o ownedSet) has(kind catalog.Kind, id kernel.UUID) bool {
	_, ok := o[kind][id]
	return ok
}

func (r referenceSet) resolve(ctx context.Context, reader ports.CatalogReader, actor kernel.UUID) (ownedSet, error) {
	owned := ownedSet{}
	for kind, ids := range r {
		got, err := reader.OwnedBy(ctx, kind, actor, ids)
		if err != nil {
			return nil, fmt.Errorf("resolve %s references: %w", kind, err)
		}
		owned[kind] = got
	}
	return owned, nil
}
