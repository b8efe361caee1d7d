package catalog

import (
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// FieldErrors maps a field name to a human-readable message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// Entry is one catalog record. Values hold only the fields of its policy.
type Entry struct {
	id     kernel.UUID
	owner  kernel.UUID
	kind   Kind
	values map[string]string

	guard guard.ConstructorGuard
}

// NewEntry validates input against the policy. Unknown keys are ignored.
// Reference ownership is checked by the caller, which has store access.
func NewEntry(id, owner kernel.UUID, p Policy, input map[string]string) (*Entry, error) {
	if err := errors.Join(id.Validate(), owner.Validate()); err != nil {
		return nil, err
	}
	values, err := normalize(p, input)
	if err != nil {
		return nil, err
	}
	return &Entry{id: id, owner: owner, kind: p.Kind, values: values, guard: guard.NewConstructorGuard()}, nil
}

// RestoreEntry rebuilds an entry read from storage without re-validating values.
func RestoreEntry(id, owner kernel.UUID, kind Kind, values map[string]string) *Entry {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Entry{id: id, owner: owner, kind: kind, values: copied, guard: guard.NewConstructorGuard()}
}

// Replace validates input and swaps the values in. On error the entry is unchanged.
func (e *Entry) Replace(p Policy, input map[string]string) error {
	values, err := normalize(p, input)
	if err != nil {
		return err
	}
	e.values = values
	return nil
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) ID() kernel.UUID { return e.id }
func (e *Entry) Owner() kernel.UUID { return e.owner }
func (e *Entry) Kind() Kind { return e.kind }
func (e *Entry) Value(name string) string {
	return e.values[name]
}

// Values returns a copy of the field values.
func (e *Entry) Values() map[string]string {
	out := make(map[string]string, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

func (e *Entry) IsOwnedBy(user kernel.UUID) bool {
	return e.owner.IsEqual(user)
}

func normalize(p Policy, input map[string]string) (map[string]string, error) {
	values := make(map[string]string, len(p.Fields))
	fieldErrs := FieldErrors{}

	for _, f := range p.Fields {
		v := strings.TrimSpace(input[f.Name])
		if v == "" {
			if f.Required {
				fieldErrs[f.Name] = "This field is required."
			}
			values[f.Name] = ""
			continue
		}
		if f.MaxLength > 0 && utf8.RuneCountInString(v) > f.MaxLength {
			fieldErrs[f.Name] = fmt.Sprintf("Ensure this value has at most %d characters.", f.MaxLength)
			continue
		}

		switch f.Type {
		case Email:
			if _, err := mail.ParseAddress(v); err != nil {
				fieldErrs[f.Name] = "Enter a valid email address."
				continue
			}
		case PositiveInt:
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				fieldErrs[f.Name] = "Enter a positive whole number."
				continue
			}
			v = strconv.Itoa(n)
		case Reference:
			id, err := kernel.UUIDFromString(v)
			if err != nil || id.Validate() != nil {
				fieldErrs[f.Name] = "Select a valid choice."
				continue
			}
			v = id.String()
		case Text:
		}
		values[f.Name] = v
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return values, nil
}
