package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/operation"
	"github.com/miroldev/vendure/internal/promotion"
	"github.com/miroldev/vendure/internal/shipping"
)

func newBinders(t *testing.T) (*promotion.Evaluator, *shipping.Configuration) {
	t.Helper()
	reg, err := promotion.DefaultRegistry()
	require.NoError(t, err)
	sc, err := shipping.DefaultConfiguration()
	require.NoError(t, err)
	return promotion.NewEvaluator(reg), sc
}

func TestLoadCatalog(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
promotions:
  - id: promo-summer
    name: Summer bundle
    enabled: true
    usage_limit: 100
    conditions:
      - code: contains_products
        arguments:
          - name: minimum
            value: "2"
          - name: productVariantIds
            value: '["12", "13"]'
      - code: minimum_order_amount
        arguments:
          - name: amount
            value: "5000"

shipping_methods:
  - id: ship-standard
    code: standard
    name: Standard shipping
    checkers:
      - code: default_shipping_eligibility_checker
        arguments:
          - name: orderMinimum
            value: "0"
    calculator:
      code: flat_rate_calculator
      arguments:
        - name: rate
          value: "500"
        - name: taxRate
          value: "20"
`)

	ev, sc := newBinders(t)
	cat, err := LoadCatalog(path, ev, sc)
	require.NoError(t, err)

	require.Len(t, cat.Promotions, 1)
	p := cat.Promotions[0]
	assert.Equal(t, domain.ID("promo-summer"), p.ID)
	assert.True(t, p.Enabled)
	require.Len(t, p.Conditions, 2)
	assert.Equal(t, "contains_products", p.Conditions[0].Code)
	// Values come back canonicalized by the binder.
	assert.Equal(t, `["12","13"]`, p.Conditions[0].ArgValues().String("productVariantIds"))

	require.Len(t, cat.ShippingMethods, 1)
	m := cat.ShippingMethods[0]
	assert.Equal(t, "standard", m.Code)
	require.Len(t, m.Checkers, 1)
	assert.Equal(t, "flat_rate_calculator", m.Calculator.Code)
	assert.Equal(t, "500", m.Calculator.ArgValues().String("rate"))
}

func TestLoadCatalogRejectsUnknownConditionCode(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
promotions:
  - id: promo-bad
    name: Bad promo
    enabled: true
    conditions:
      - code: no_such_condition
`)

	ev, sc := newBinders(t)
	_, err := LoadCatalog(path, ev, sc)
	require.Error(t, err)
	assert.True(t, operation.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "Bad promo")
}

func TestLoadCatalogRejectsBadCalculatorArgs(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
shipping_methods:
  - id: ship-bad
    code: broken
    name: Broken method
    calculator:
      code: flat_rate_calculator
      arguments:
        - name: rate
          value: "not-a-number"
`)

	ev, sc := newBinders(t)
	_, err := LoadCatalog(path, ev, sc)
	require.Error(t, err)
	assert.True(t, operation.IsInvalidInput(err))
}
