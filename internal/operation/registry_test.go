package operation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOp struct{ def Definition }

func (s stubOp) Definition() Definition { return s.def }

func stub(code string, args ...ArgSpec) stubOp {
	return stubOp{def: Definition{Code: code, Description: English(code), Args: args}}
}

func TestRegistryGet(t *testing.T) {
	reg, err := NewRegistry[stubOp]("promotion condition",
		stub("contains_products", ArgSpec{Name: "minimum", Type: ArgInt, Required: true}),
		stub("minimum_order_amount"),
	)
	require.NoError(t, err)

	op, err := reg.Get("contains_products")
	require.NoError(t, err)
	assert.Equal(t, "contains_products", op.Definition().Code)

	_, err = reg.Get("nonexistent_code")
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
	assert.Contains(t, err.Error(), "nonexistent_code")
	assert.Contains(t, err.Error(), "promotion condition")
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry[stubOp]("shipping calculator", stub("flat_rate"), stub("flat_rate"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flat_rate")
}

func TestRegistryBind(t *testing.T) {
	reg, err := NewRegistry[stubOp]("shipping eligibility checker",
		stub("default_shipping_eligibility_checker", ArgSpec{Name: "orderMinimum", Type: ArgInt, Required: true}),
	)
	require.NoError(t, err)

	bound, err := reg.Bind(RawInput{
		Code:      "default_shipping_eligibility_checker",
		Arguments: []RawArg{{Name: "orderMinimum", Value: "1000"}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1000, bound.ArgValues().Int("orderMinimum"))

	_, err = reg.Bind(RawInput{Code: "no_such_checker"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shipping eligibility checker")
}

func TestRegistryCodesAreOrderedAndCopied(t *testing.T) {
	reg, err := NewRegistry[stubOp]("test", stub("b"), stub("a"), stub("c"))
	require.NoError(t, err)

	codes := reg.Codes()
	assert.Equal(t, []string{"b", "a", "c"}, codes)

	codes[0] = "mutated"
	assert.Equal(t, []string{"b", "a", "c"}, reg.Codes())
}

func TestRegistryConcurrentReaders(t *testing.T) {
	reg, err := NewRegistry[stubOp]("test", stub("x"), stub("y"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := reg.Get("x"); err != nil {
					t.Error(err)
					return
				}
				reg.Codes()
				reg.Definitions()
			}
		}()
	}
	wg.Wait()
}
