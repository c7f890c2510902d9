package shipping

import (
	"fmt"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/rctx"
)

// Resolver runs shipping methods' configured rules against orders.
type Resolver struct {
	config *Configuration
}

// NewResolver creates a resolver over the given operation configuration.
func NewResolver(config *Configuration) *Resolver {
	return &Resolver{config: config}
}

// ResolveEligible returns the subset of methods whose checkers all pass for
// the order, preserving the input order. It does not rank the survivors;
// choosing among multiple eligible methods is the caller's decision.
func (r *Resolver) ResolveEligible(ctx *rctx.Context, methods []Method, order *domain.Order) ([]Method, error) {
	var eligible []Method
	for _, m := range methods {
		ok, err := r.IsEligible(ctx, m, order)
		if err != nil {
			return nil, fmt.Errorf("method %q: %w", m.Code, err)
		}
		if ok {
			eligible = append(eligible, m)
		}
	}
	return eligible, nil
}

// IsEligible reports whether every checker of the method passes for the
// order (conjunction, same semantics as promotion conditions). A checker
// naming an unregistered code is an InvalidInput error.
func (r *Resolver) IsEligible(ctx *rctx.Context, m Method, order *domain.Order) (bool, error) {
	for _, op := range m.Checkers {
		chk, err := r.config.checkers.Get(op.Code)
		if err != nil {
			return false, err
		}
		ok, err := chk.Check(ctx, order, op.ArgValues())
		if err != nil {
			return false, fmt.Errorf("check %q: %w", op.Code, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Price runs the method's calculator against the order. It performs no
// persistence and is deterministic for the same order state and arguments.
func (r *Resolver) Price(ctx *rctx.Context, m Method, order *domain.Order) (Quote, error) {
	calc, err := r.config.calculators.Get(m.Calculator.Code)
	if err != nil {
		return Quote{}, err
	}
	quote, err := calc.Calculate(ctx, order, m.Calculator.ArgValues())
	if err != nil {
		return Quote{}, fmt.Errorf("calculate %q: %w", m.Calculator.Code, err)
	}
	return quote, nil
}
