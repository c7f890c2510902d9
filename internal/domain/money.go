package domain

import "fmt"

// Money is a monetary amount in the minor unit of its currency (cents for
// USD/EUR). All price arithmetic in the rule engine happens in minor units;
// conversion to display form is the caller's concern.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Add returns the sum of two amounts. Mixing currencies is a programming
// error and panics rather than silently producing a wrong total.
func (m Money) Add(other Money) Money {
	if m.Currency != other.Currency && m.Currency != "" && other.Currency != "" {
		panic(fmt.Sprintf("money: cannot add %s to %s", other.Currency, m.Currency))
	}
	cur := m.Currency
	if cur == "" {
		cur = other.Currency
	}
	return Money{Amount: m.Amount + other.Amount, Currency: cur}
}

// GreaterOrEqual reports whether the amount is at least n minor units.
func (m Money) GreaterOrEqual(n int64) bool { return m.Amount >= n }

// String renders the amount for logs, e.g. "1099 USD".
func (m Money) String() string {
	if m.Currency == "" {
		return fmt.Sprintf("%d", m.Amount)
	}
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
