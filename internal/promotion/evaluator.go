package promotion

import (
	"fmt"
	"time"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/operation"
	"github.com/miroldev/vendure/internal/rctx"
)

// Evaluator runs bound promotion conditions against orders.
type Evaluator struct {
	registry *operation.Registry[Condition]
}

// NewEvaluator creates an evaluator over the given condition registry.
func NewEvaluator(registry *operation.Registry[Condition]) *Evaluator {
	return &Evaluator{registry: registry}
}

// ParseConditionInput binds raw operator input to a condition operation,
// rejecting unknown codes and malformed arguments as InvalidInput.
func (e *Evaluator) ParseConditionInput(input operation.RawInput) (operation.ConfigurableOperation, error) {
	return e.registry.Bind(input)
}

// Evaluate reports whether every condition holds for the order (conjunction).
// Conditions run in configured order; evaluation stops at the first false,
// which is sound because AND is commutative and checks are read-only. A
// condition naming an unregistered code is an InvalidInput error, and a check
// failure aborts evaluation.
func (e *Evaluator) Evaluate(ctx *rctx.Context, conditions []operation.ConfigurableOperation, order *domain.Order) (bool, error) {
	for _, op := range conditions {
		cond, err := e.registry.Get(op.Code)
		if err != nil {
			return false, err
		}
		ok, err := cond.Check(ctx, order, op.ArgValues())
		if err != nil {
			return false, fmt.Errorf("check condition %q: %w", op.Code, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Applies reports whether the promotion as a whole applies to the order at
// the given instant: it must be enabled, inside its activity window, and all
// of its conditions must hold.
func (e *Evaluator) Applies(ctx *rctx.Context, p *Promotion, order *domain.Order, now time.Time) (bool, error) {
	if !p.ActiveAt(now) {
		return false, nil
	}
	return e.Evaluate(ctx, p.Conditions, order)
}
