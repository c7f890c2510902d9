package shipping

import "github.com/miroldev/vendure/internal/operation"

// Configuration holds the registered eligibility checkers and calculators
// and binds raw operator input against them. Errors from the two Parse
// methods identify which kind of code was invalid.
type Configuration struct {
	checkers    *operation.Registry[EligibilityChecker]
	calculators *operation.Registry[Calculator]
}

// NewConfiguration builds a Configuration from explicit operation sets.
func NewConfiguration(checkers []EligibilityChecker, calculators []Calculator) (*Configuration, error) {
	checkerReg, err := operation.NewRegistry("shipping eligibility checker", checkers...)
	if err != nil {
		return nil, err
	}
	calculatorReg, err := operation.NewRegistry("shipping calculator", calculators...)
	if err != nil {
		return nil, err
	}
	return &Configuration{checkers: checkerReg, calculators: calculatorReg}, nil
}

// DefaultConfiguration builds a Configuration with the built-in operations.
func DefaultConfiguration() (*Configuration, error) {
	return NewConfiguration(DefaultCheckers(), DefaultCalculators())
}

// ParseCheckerInput binds raw eligibility-checker input.
func (c *Configuration) ParseCheckerInput(input operation.RawInput) (operation.ConfigurableOperation, error) {
	return c.checkers.Bind(input)
}

// ParseCalculatorInput binds raw calculator input.
func (c *Configuration) ParseCalculatorInput(input operation.RawInput) (operation.ConfigurableOperation, error) {
	return c.calculators.Bind(input)
}

// CheckerDefinitions lists the registered checker definitions.
func (c *Configuration) CheckerDefinitions() []operation.Definition {
	return c.checkers.Definitions()
}

// CalculatorDefinitions lists the registered calculator definitions.
func (c *Configuration) CalculatorDefinitions() []operation.Definition {
	return c.calculators.Definitions()
}
