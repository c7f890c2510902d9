package promotion

import (
	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/operation"
	"github.com/miroldev/vendure/internal/rctx"
)

// ContainsProducts holds when the order contains at least `minimum` units
// across the given product variants. Identifier comparison is value-based,
// so numeric and string forms of the same variant id match.
func ContainsProducts() Condition {
	return New(operation.Definition{
		Code:        "contains_products",
		Description: operation.English("Buy at least { minimum } of the specified products"),
		Args: []operation.ArgSpec{
			{Name: "minimum", Type: operation.ArgInt, Required: true},
			{
				Name:        "productVariantIds",
				Type:        operation.ArgID,
				List:        true,
				Required:    true,
				Label:       operation.English("Product variants"),
				UIComponent: "product-selector-form-input",
			},
		},
	}, func(_ *rctx.Context, order *domain.Order, args operation.Args) (bool, error) {
		ids := args.IDList("productVariantIds")
		var matches int64
		for _, line := range order.Lines {
			if lineContainsIDs(ids, line) {
				matches += int64(line.Quantity)
			}
		}
		return args.Int("minimum") <= matches, nil
	})
}

func lineContainsIDs(ids []domain.ID, line domain.OrderLine) bool {
	for _, id := range ids {
		if domain.IDsEqual(id, line.ProductVariantID) {
			return true
		}
	}
	return false
}

// MinimumOrderAmount holds when the order subtotal reaches `amount` minor
// units.
func MinimumOrderAmount() Condition {
	return New(operation.Definition{
		Code:        "minimum_order_amount",
		Description: operation.English("If order total is greater than { amount }"),
		Args: []operation.ArgSpec{
			{Name: "amount", Type: operation.ArgInt, Required: true, UIComponent: "currency-form-input"},
		},
	}, func(_ *rctx.Context, order *domain.Order, args operation.Args) (bool, error) {
		return order.Total().GreaterOrEqual(args.Int("amount")), nil
	})
}

// Defaults returns the built-in condition set.
func Defaults() []Condition {
	return []Condition{ContainsProducts(), MinimumOrderAmount(), CustomRule()}
}

// DefaultRegistry builds a registry holding the built-in conditions.
func DefaultRegistry() (*operation.Registry[Condition], error) {
	return operation.NewRegistry("promotion condition", Defaults()...)
}
