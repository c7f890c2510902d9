package operation

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/miroldev/vendure/internal/domain"
)

// Args exposes bound argument values to check and calculate functions.
// Values were validated during binding, so the accessors are lenient: a
// missing or (impossibly) malformed value yields the zero value rather than
// an error.
type Args map[string]string

// ArgValues returns the bound arguments as a lookup map.
func (op ConfigurableOperation) ArgValues() Args {
	m := make(Args, len(op.Args))
	for _, a := range op.Args {
		m[a.Name] = a.Value
	}
	return m
}

// Has reports whether the argument was bound (relevant for optional slots).
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Int returns the named int argument, or 0 if absent.
func (a Args) Int(name string) int64 {
	n, _ := strconv.ParseInt(a[name], 10, 64)
	return n
}

// String returns the named string argument, or "" if absent.
func (a Args) String(name string) string { return a[name] }

// Bool returns the named boolean argument, or false if absent.
func (a Args) Bool(name string) bool {
	b, _ := strconv.ParseBool(a[name])
	return b
}

// ID returns the named identifier argument.
func (a Args) ID(name string) domain.ID {
	return domain.ID(a[name])
}

// IDList returns the named list-of-ID argument, or nil if absent.
func (a Args) IDList(name string) []domain.ID {
	raw, ok := a[name]
	if !ok {
		return nil
	}
	var elems []string
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil
	}
	ids := make([]domain.ID, len(elems))
	for i, e := range elems {
		ids[i] = domain.ID(e)
	}
	return ids
}

// Time returns the named datetime argument, or the zero time if absent.
func (a Args) Time(name string) time.Time {
	ts, _ := time.Parse(time.RFC3339, a[name])
	return ts
}
