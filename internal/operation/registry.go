package operation

import "fmt"

// Describable is implemented by every concrete operation implementation
// (condition, checker, calculator). The rest of the engine depends only on
// this capability plus the kind-specific evaluate method, so new rule kinds
// plug in without touching the evaluators.
type Describable interface {
	Definition() Definition
}

// Registry maps operation codes to their implementations for one operation
// kind. It is populated once at construction and read-only afterwards, which
// makes it safe to share across concurrent evaluations without locking.
type Registry[T Describable] struct {
	kind  string
	codes []string
	ops   map[string]T
}

// NewRegistry builds a registry for the given operation kind ("promotion
// condition", "shipping eligibility checker", ...). The kind appears in
// InvalidInputError messages so callers can tell which registry rejected
// their input. Registering two operations with the same code is a
// programming error.
func NewRegistry[T Describable](kind string, ops ...T) (*Registry[T], error) {
	r := &Registry[T]{kind: kind, ops: make(map[string]T, len(ops))}
	for _, op := range ops {
		code := op.Definition().Code
		if code == "" {
			return nil, fmt.Errorf("%s registry: operation has an empty code", kind)
		}
		if _, exists := r.ops[code]; exists {
			return nil, fmt.Errorf("%s registry: duplicate code %q", kind, code)
		}
		r.ops[code] = op
		r.codes = append(r.codes, code)
	}
	return r, nil
}

// Kind returns the operation kind this registry holds.
func (r *Registry[T]) Kind() string { return r.kind }

// Get returns the implementation registered under code. An unknown code is
// an InvalidInputError naming the code and the registry kind.
func (r *Registry[T]) Get(code string) (T, error) {
	op, ok := r.ops[code]
	if !ok {
		var zero T
		return zero, errUnknownCode(r.kind, code)
	}
	return op, nil
}

// Codes returns the registered codes in registration order.
func (r *Registry[T]) Codes() []string {
	return append([]string(nil), r.codes...)
}

// Definitions returns the definitions in registration order, for rendering
// configuration UIs.
func (r *Registry[T]) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.codes))
	for _, code := range r.codes {
		defs = append(defs, r.ops[code].Definition())
	}
	return defs
}

// Bind looks up input.Code and binds the raw arguments against the matching
// definition. See Bind for the coercion rules.
func (r *Registry[T]) Bind(input RawInput) (ConfigurableOperation, error) {
	op, err := r.Get(input.Code)
	if err != nil {
		return ConfigurableOperation{}, err
	}
	return bind(r.kind, op.Definition(), input)
}
