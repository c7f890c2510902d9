package taxcategory

import (
	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/rctx"
)

// Repository defines the data access contract for tax categories. Every
// method runs inside the transaction carried by the request context, so a
// demote followed by a write commits or rolls back as one unit.
type Repository interface {
	// GetByID returns a single category. Returns ErrNotFound if it doesn't exist.
	GetByID(ctx *rctx.Context, id domain.ID) (*domain.TaxCategory, error)

	// FindAll returns all categories ordered by creation time.
	FindAll(ctx *rctx.Context) ([]domain.TaxCategory, error)

	// Insert persists a new category.
	Insert(ctx *rctx.Context, tc *domain.TaxCategory) error

	// Update persists changes to an existing category. Returns ErrNotFound
	// if the row has vanished.
	Update(ctx *rctx.Context, tc *domain.TaxCategory) error

	// DemoteDefaults clears IsDefault on every currently-default row.
	DemoteDefaults(ctx *rctx.Context) error

	// Remove deletes the category row. Returns ErrNotFound if it doesn't exist.
	Remove(ctx *rctx.Context, id domain.ID) error

	// CountRatesForCategory returns the number of tax rates referencing the
	// category.
	CountRatesForCategory(ctx *rctx.Context, id domain.ID) (int, error)
}
