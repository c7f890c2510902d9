package shipping

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/operation"
	"github.com/miroldev/vendure/internal/rctx"
)

// DefaultChecker passes orders whose subtotal is at least `orderMinimum`
// minor units.
func DefaultChecker() EligibilityChecker {
	return NewChecker(operation.Definition{
		Code:        "default_shipping_eligibility_checker",
		Description: operation.English("Default shipping eligibility checker"),
		Args: []operation.ArgSpec{
			{
				Name:        "orderMinimum",
				Type:        operation.ArgInt,
				Required:    true,
				Label:       operation.English("Minimum order value"),
				UIComponent: "currency-form-input",
			},
		},
	}, func(_ *rctx.Context, order *domain.Order, args operation.Args) (bool, error) {
		return order.Total().GreaterOrEqual(args.Int("orderMinimum")), nil
	})
}

// FlatRateCalculator quotes a fixed price regardless of order contents. The
// `taxRate` argument classifies the quote for tax purposes and must parse as
// a decimal percentage.
func FlatRateCalculator() Calculator {
	return NewCalculator(operation.Definition{
		Code:        "flat_rate_calculator",
		Description: operation.English("Flat-rate shipping calculator"),
		Args: []operation.ArgSpec{
			{
				Name:        "rate",
				Type:        operation.ArgInt,
				Required:    true,
				Label:       operation.English("Shipping price"),
				UIComponent: "currency-form-input",
			},
			{
				Name:  "taxRate",
				Type:  operation.ArgString,
				Label: operation.English("Tax rate"),
			},
		},
	}, func(_ *rctx.Context, order *domain.Order, args operation.Args) (Quote, error) {
		rate := decimal.Zero
		if args.Has("taxRate") {
			parsed, err := decimal.NewFromString(args.String("taxRate"))
			if err != nil {
				return Quote{}, fmt.Errorf("flat_rate_calculator: taxRate: %w", err)
			}
			rate = parsed
		}
		return Quote{
			Price:   domain.Money{Amount: args.Int("rate"), Currency: order.CurrencyCode},
			TaxRate: rate,
		}, nil
	})
}

// DefaultCheckers returns the built-in eligibility checkers.
func DefaultCheckers() []EligibilityChecker {
	return []EligibilityChecker{DefaultChecker()}
}

// DefaultCalculators returns the built-in calculators.
func DefaultCalculators() []Calculator {
	return []Calculator{FlatRateCalculator()}
}
