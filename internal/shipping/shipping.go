// Package shipping resolves which shipping methods are eligible for an order
// and what each eligible method costs. Eligibility checkers and price
// calculators are configurable operations: a method carries one bound checker
// set (conjunction) and exactly one bound calculator.
package shipping

import (
	"github.com/shopspring/decimal"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/operation"
	"github.com/miroldev/vendure/internal/rctx"
)

// Method is an operator-configured way of shipping an order.
type Method struct {
	ID          domain.ID                         `json:"id"`
	Code        string                            `json:"code"`
	Name        string                            `json:"name"`
	Description string                            `json:"description,omitempty"`
	Checkers    []operation.ConfigurableOperation `json:"checkers"`
	Calculator  operation.ConfigurableOperation   `json:"calculator"`
}

// Quote is the outcome of running a method's calculator against an order:
// the shipping price plus its tax classification. Calculators are pure; a
// quote is never persisted by this package.
type Quote struct {
	Price   domain.Money    `json:"price"`
	TaxRate decimal.Decimal `json:"tax_rate"` // percentage, e.g. 20 for 20%
}

// EligibilityChecker is the capability interface for one eligibility-checker
// kind. Check must be a read-only query over the order.
type EligibilityChecker interface {
	operation.Describable
	Check(ctx *rctx.Context, order *domain.Order, args operation.Args) (bool, error)
}

// Calculator is the capability interface for one price-calculator kind.
// Calculate must be deterministic for the same order state and bound
// arguments.
type Calculator interface {
	operation.Describable
	Calculate(ctx *rctx.Context, order *domain.Order, args operation.Args) (Quote, error)
}

// CheckFunc adapts a function to the EligibilityChecker interface.
type CheckFunc func(ctx *rctx.Context, order *domain.Order, args operation.Args) (bool, error)

// CalculateFunc adapts a function to the Calculator interface.
type CalculateFunc func(ctx *rctx.Context, order *domain.Order, args operation.Args) (Quote, error)

type checker struct {
	def   operation.Definition
	check CheckFunc
}

// NewChecker builds an EligibilityChecker from a definition and check function.
func NewChecker(def operation.Definition, check CheckFunc) EligibilityChecker {
	return &checker{def: def, check: check}
}

func (c *checker) Definition() operation.Definition { return c.def }

func (c *checker) Check(ctx *rctx.Context, order *domain.Order, args operation.Args) (bool, error) {
	return c.check(ctx, order, args)
}

type calculator struct {
	def       operation.Definition
	calculate CalculateFunc
}

// NewCalculator builds a Calculator from a definition and calculate function.
func NewCalculator(def operation.Definition, calculate CalculateFunc) Calculator {
	return &calculator{def: def, calculate: calculate}
}

func (c *calculator) Definition() operation.Definition { return c.def }

func (c *calculator) Calculate(ctx *rctx.Context, order *domain.Order, args operation.Args) (Quote, error) {
	return c.calculate(ctx, order, args)
}
