package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ID identifies an entity. IDs originate from different storage engines, so
// the same identifier may circulate in numeric form ("42") or string form
// ("042", "42"). Comparison must therefore go through IDsEqual, never ==,
// whenever one side may have been round-tripped through user input.
type ID string

// NewID generates a fresh random entity ID.
func NewID() ID {
	return ID(uuid.New().String())
}

// String returns the raw identifier.
func (id ID) String() string { return string(id) }

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool { return id == "" }

// IDsEqual compares two identifiers by value. Purely numeric identifiers are
// compared as numbers, so "007" and "7" are the same entity; anything else is
// compared as a trimmed string.
func IDsEqual(a, b ID) bool {
	as := strings.TrimSpace(string(a))
	bs := strings.TrimSpace(string(b))
	if as == bs {
		return true
	}
	if isNumeric(as) && isNumeric(bs) {
		return strings.TrimLeft(as, "0") == strings.TrimLeft(bs, "0")
	}
	return false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
