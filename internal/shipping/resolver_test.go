package shipping_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/operation"
	"github.com/miroldev/vendure/internal/rctx"
	"github.com/miroldev/vendure/internal/shipping"
)

func newResolver(t *testing.T) (*shipping.Configuration, *shipping.Resolver) {
	t.Helper()
	cfg, err := shipping.DefaultConfiguration()
	require.NoError(t, err)
	return cfg, shipping.NewResolver(cfg)
}

// order with a subtotal of 5000 minor units.
func shippableOrder() *domain.Order {
	return &domain.Order{
		ID:           "order-7",
		CurrencyCode: "EUR",
		Lines: []domain.OrderLine{
			{ProductVariantID: "A", Quantity: 2, UnitPrice: 1500},
			{ProductVariantID: "B", Quantity: 1, UnitPrice: 2000},
		},
	}
}

func method(t *testing.T, cfg *shipping.Configuration, code string, orderMinimum, rate string) shipping.Method {
	t.Helper()
	chk, err := cfg.ParseCheckerInput(operation.RawInput{
		Code:      "default_shipping_eligibility_checker",
		Arguments: []operation.RawArg{{Name: "orderMinimum", Value: orderMinimum}},
	})
	require.NoError(t, err)
	calc, err := cfg.ParseCalculatorInput(operation.RawInput{
		Code: "flat_rate_calculator",
		Arguments: []operation.RawArg{
			{Name: "rate", Value: rate},
			{Name: "taxRate", Value: "20"},
		},
	})
	require.NoError(t, err)
	return shipping.Method{
		ID:         domain.ID("sm-" + code),
		Code:       code,
		Name:       code,
		Checkers:   []operation.ConfigurableOperation{chk},
		Calculator: calc,
	}
}

func TestResolveEligiblePreservesOrder(t *testing.T) {
	cfg, r := newResolver(t)
	order := shippableOrder() // subtotal 5000

	methods := []shipping.Method{
		method(t, cfg, "standard", "0", "500"),     // eligible
		method(t, cfg, "express", "10000", "1500"), // not eligible: 5000 < 10000
		method(t, cfg, "economy", "2500", "300"),   // eligible
	}

	eligible, err := r.ResolveEligible(rctx.Background(), methods, order)
	require.NoError(t, err)

	codes := make([]string, len(eligible))
	for i, m := range eligible {
		codes[i] = m.Code
	}
	assert.Equal(t, []string{"standard", "economy"}, codes, "input order must be preserved")
}

func TestIsEligibleIsConjunction(t *testing.T) {
	cfg, r := newResolver(t)
	order := shippableOrder()

	m := method(t, cfg, "fussy", "0", "100")
	strict, err := cfg.ParseCheckerInput(operation.RawInput{
		Code:      "default_shipping_eligibility_checker",
		Arguments: []operation.RawArg{{Name: "orderMinimum", Value: "99999"}},
	})
	require.NoError(t, err)
	m.Checkers = append(m.Checkers, strict)

	ok, err := r.IsEligible(rctx.Background(), m, order)
	require.NoError(t, err)
	assert.False(t, ok, "one failing checker makes the method ineligible")
}

func TestPriceIsDeterministic(t *testing.T) {
	cfg, r := newResolver(t)
	order := shippableOrder()
	m := method(t, cfg, "standard", "0", "750")

	first, err := r.Price(rctx.Background(), m, order)
	require.NoError(t, err)
	second, err := r.Price(rctx.Background(), m, order)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.Money{Amount: 750, Currency: "EUR"}, first.Price)
	assert.True(t, first.TaxRate.Equal(decimal.NewFromInt(20)), "tax rate = %s", first.TaxRate)
}

func TestUnknownCodesIdentifyCheckerVsCalculator(t *testing.T) {
	cfg, r := newResolver(t)
	order := shippableOrder()

	_, err := cfg.ParseCheckerInput(operation.RawInput{Code: "teleporter"})
	require.Error(t, err)
	assert.True(t, operation.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "shipping eligibility checker")
	assert.Contains(t, err.Error(), "teleporter")

	_, err = cfg.ParseCalculatorInput(operation.RawInput{Code: "teleporter"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shipping calculator")

	// Unknown codes on already-stored operations surface the same way at
	// evaluation time.
	m := method(t, cfg, "standard", "0", "100")
	m.Calculator = operation.ConfigurableOperation{Code: "teleporter"}
	_, err = r.Price(rctx.Background(), m, order)
	require.Error(t, err)
	assert.True(t, operation.IsInvalidInput(err))
}

func TestFlatRateCalculatorOptionalTaxRate(t *testing.T) {
	cfg, r := newResolver(t)
	order := shippableOrder()

	calc, err := cfg.ParseCalculatorInput(operation.RawInput{
		Code:      "flat_rate_calculator",
		Arguments: []operation.RawArg{{Name: "rate", Value: "400"}},
	})
	require.NoError(t, err)

	quote, err := r.Price(rctx.Background(), shipping.Method{Code: "bare", Calculator: calc}, order)
	require.NoError(t, err)
	assert.True(t, quote.TaxRate.IsZero(), "omitted taxRate defaults to zero")
	assert.Equal(t, int64(400), quote.Price.Amount)
}
