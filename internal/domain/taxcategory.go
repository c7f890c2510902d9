package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxCategory is a named tax classification assigned to products and shipping
// quotes. At most one category is the system-wide default at any time; the
// tax-category service owns that invariant, not the storage layer.
type TaxCategory struct {
	ID        ID        `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	IsDefault bool      `json:"is_default" db:"is_default"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TaxRate applies a percentage rate to orders within one tax category.
// TaxRate holds the reference (many rates to one category); deleting a
// category with live rates is refused by the service.
type TaxRate struct {
	ID         ID              `json:"id" db:"id"`
	Name       string          `json:"name" db:"name"`
	CategoryID ID              `json:"category_id" db:"category_id"`
	Rate       decimal.Decimal `json:"rate" db:"rate"` // percentage, e.g. 20 for 20%
	Enabled    bool            `json:"enabled" db:"enabled"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}
