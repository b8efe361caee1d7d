package commands

// HeaderInput is the raw order header as submitted by the caller.
// Dates are accepted as YYYY-MM-DD, DD/MM/YYYY or DD-MM-YYYY.
type HeaderInput struct {
	SupplierID       string
	Description      string
	ExpectedDelivery string
	Status           string
}

// LineInput is one raw line-item operation.
//
//   - ID empty, Delete false: add a new line
//   - ID set, Delete false: update that line
//   - ID set, Delete true: remove that line
//   - ID empty, Delete true: ignored, like an untouched blank form row
type LineInput struct {
	ID        string
	ItemID    string
	FleetID   string
	Status    string
	Quantity  int
	UnitPrice string
	Delete    bool
}
