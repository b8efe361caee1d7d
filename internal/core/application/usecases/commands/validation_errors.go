package commands

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors is the structured report of a rejected submission. Items is
// aligned with the submitted lines; valid lines have an empty map.
type ValidationErrors struct {
	Header   map[string]string   `json:"header"`
	Items    []map[string]string `json:"items"`
	NonField []string            `json:"non_field"`
}

func newValidationErrors(lines int) *ValidationErrors {
	items := make([]map[string]string, lines)
	for i := range items {
		items[i] = map[string]string{}
	}
	return &ValidationErrors{Header: map[string]string{}, Items: items, NonField: []string{}}
}

// Empty reports whether nothing was recorded.
func (e *ValidationErrors) Empty() bool {
	if len(e.Header) > 0 || len(e.NonField) > 0 {
		return false
	}
	for _, item := range e.Items {
		if len(item) > 0 {
			return false
		}
	}
	return true
}

func (e *ValidationErrors) Error() string {
	var parts []string
	for _, k := range sortedKeys(e.Header) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Header[k]))
	}
	for i, item := range e.Items {
		for _, k := range sortedKeys(item) {
			parts = append(parts, fmt.Sprintf("items[%d].%s: %s", i, k, item[k]))
		}
	}
	parts = append(parts, e.NonField...)
	return "order is invalid: " + strings.Join(parts, "; ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
