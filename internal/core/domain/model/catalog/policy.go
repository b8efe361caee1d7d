package catalog

import (
	"fmt"

	"purchasing/internal/pkg/errs"
)

// Kind identifies a catalog entity.
type Kind int

const (
	KindUnknown Kind = iota
	Supplier
	Fleet
	ItemCategory
	Item
)

func (k Kind) String() string {
	if p, ok := PolicyOf(k); ok {
		return p.Name
	}
	return "unknown"
}

// FieldType drives per-field validation.
type FieldType int

const (
	Text FieldType = iota
	Email
	PositiveInt
	Reference
)

// Field describes one editable attribute of a catalog entity.
type Field struct {
	Name      string
	Type      FieldType
	Required  bool
	MaxLength int

	// Ref is the referenced kind for Reference fields. The referenced entry
	// must be owned by the actor.
	Ref Kind
}

// Policy is the capability descriptor of one catalog kind.
type Policy struct {
	Kind     Kind
	Name     string
	Resource string
	Fields   []Field

	// OwnerEnforced restricts update and delete to the owner.
	OwnerEnforced bool

	// Label names the field shown when the entry is referenced, e.g. in the dashboard.
	Label string
}

var policies = []Policy{
	{
		Kind:     Supplier,
		Name:     "supplier",
		Resource: "suppliers",
		Label:    "name",
		Fields: []Field{
			{Name: "name", Type: Text, Required: true, MaxLength: 100},
			{Name: "cnpj", Type: Text, Required: true, MaxLength: 18},
			{Name: "phone", Type: Text, MaxLength: 20},
			{Name: "email", Type: Email, MaxLength: 254},
			{Name: "city", Type: Text, Required: true, MaxLength: 100},
			{Name: "state", Type: Text, Required: true, MaxLength: 100},
		},
		OwnerEnforced: true,
	},
	{
		Kind:     Fleet,
		Name:     "fleet",
		Resource: "fleets",
		Label:    "prefix",
		Fields: []Field{
			{Name: "prefix", Type: Text, Required: true, MaxLength: 10},
			{Name: "description", Type: Text, Required: true, MaxLength: 255},
			{Name: "year", Type: PositiveInt, Required: true},
		},
		OwnerEnforced: true,
	},
	{
		Kind:     ItemCategory,
		Name:     "item category",
		Resource: "item-categories",
		Label:    "name",
		Fields: []Field{
			{Name: "name", Type: Text, Required: true, MaxLength: 100},
		},
		OwnerEnforced: true,
	},
	{
		Kind:     Item,
		Name:     "item",
		Resource: "items",
		Label:    "name",
		Fields: []Field{
			{Name: "name", Type: Text, Required: true, MaxLength: 100},
			{Name: "category_id", Type: Reference, Required: true, Ref: ItemCategory},
		},
		OwnerEnforced: true,
	},
}

// Policies returns the table in declaration order.
func Policies() []Policy {
	out := make([]Policy, len(policies))
	copy(out, policies)
	return out
}

// PolicyFor looks a policy up by its URL resource name, e.g. "item-categories".
func PolicyFor(resource string) (Policy, error) {
	for _, p := range policies {
		if p.Resource == resource {
			return p, nil
		}
	}
	return Policy{}, errs.NewObjectNotFoundErrorWithCause("resource", resource,
		fmt.Errorf("%q is not a catalog resource", resource))
}

func PolicyOf(kind Kind) (Policy, bool) {
	for _, p := range policies {
		if p.Kind == kind {
			return p, true
		}
	}
	return Policy{}, false
}

// References returns the fields pointing at other catalog entries.
func (p Policy) References() []Field {
	var refs []Field
	for _, f := range p.Fields {
		if f.Type == Reference {
			refs = append(refs, f)
		}
	}
	return refs
}
