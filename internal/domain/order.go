package domain

import "time"

// Order is the purchase aggregate read by rule evaluation. The rule engine
// treats an Order as an immutable snapshot: conditions, eligibility checkers,
// and calculators may read it but never mutate it.
type Order struct {
	ID           ID          `json:"id"`
	Code         string      `json:"code"`
	CustomerID   ID          `json:"customer_id"`
	CurrencyCode string      `json:"currency_code"`
	Lines        []OrderLine `json:"lines"`
	PlacedAt     *time.Time  `json:"placed_at,omitempty"`
}

// OrderLine is a single line item on an order.
type OrderLine struct {
	ID               ID    `json:"id"`
	ProductVariantID ID    `json:"product_variant_id"`
	Quantity         int   `json:"quantity"`
	UnitPrice        int64 `json:"unit_price"` // minor units, currency of the order
}

// LineTotal returns the price of the line in minor units.
func (l OrderLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Total returns the order subtotal (sum of line totals) in the order currency.
func (o *Order) Total() Money {
	var sum int64
	for _, l := range o.Lines {
		sum += l.LineTotal()
	}
	return Money{Amount: sum, Currency: o.CurrencyCode}
}

// TotalQuantity returns the number of units across all lines.
func (o *Order) TotalQuantity() int {
	var n int
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}
