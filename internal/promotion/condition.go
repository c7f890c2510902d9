// Package promotion evaluates operator-configured promotion conditions
// against orders. A promotion applies to an order iff every one of its bound
// conditions holds (conjunction); each condition is a configurable operation
// registered under a unique code.
package promotion

import (
	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/operation"
	"github.com/miroldev/vendure/internal/rctx"
)

// CheckFunc decides whether a condition holds for an order. Checks may read
// additional detail (stock levels, customer data) and may therefore fail, but
// they must never mutate the order.
type CheckFunc func(ctx *rctx.Context, order *domain.Order, args operation.Args) (bool, error)

// Condition is the capability interface for one promotion-condition kind.
type Condition interface {
	operation.Describable
	Check(ctx *rctx.Context, order *domain.Order, args operation.Args) (bool, error)
}

type condition struct {
	def   operation.Definition
	check CheckFunc
}

// New builds a Condition from a definition and its check function.
func New(def operation.Definition, check CheckFunc) Condition {
	return &condition{def: def, check: check}
}

func (c *condition) Definition() operation.Definition { return c.def }

func (c *condition) Check(ctx *rctx.Context, order *domain.Order, args operation.Args) (bool, error) {
	return c.check(ctx, order, args)
}
