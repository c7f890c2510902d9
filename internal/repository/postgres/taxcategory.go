// Package postgres implements the service repository interfaces against
// PostgreSQL. All statements run on the transaction carried by the request
// context; the package never opens its own transactions.
package postgres

import (
	"database/sql"
	"fmt"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/rctx"
	"github.com/miroldev/vendure/internal/service/taxcategory"
)

// TaxCategoryRepo implements taxcategory.Repository against PostgreSQL.
type TaxCategoryRepo struct{}

// NewTaxCategoryRepo creates a Postgres-backed tax-category repository.
func NewTaxCategoryRepo() *TaxCategoryRepo { return &TaxCategoryRepo{} }

func (r *TaxCategoryRepo) GetByID(ctx *rctx.Context, id domain.ID) (*domain.TaxCategory, error) {
	var tc domain.TaxCategory
	err := ctx.Tx().QueryRowContext(ctx.Context(),
		`SELECT id, name, is_default, created_at, updated_at FROM tax_categories WHERE id = $1`,
		id.String(),
	).Scan(&tc.ID, &tc.Name, &tc.IsDefault, &tc.CreatedAt, &tc.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, taxcategory.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tax category: %w", err)
	}
	return &tc, nil
}

func (r *TaxCategoryRepo) FindAll(ctx *rctx.Context) ([]domain.TaxCategory, error) {
	rows, err := ctx.Tx().QueryContext(ctx.Context(),
		`SELECT id, name, is_default, created_at, updated_at FROM tax_categories ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("list tax categories: %w", err)
	}
	defer rows.Close()

	var out []domain.TaxCategory
	for rows.Next() {
		var tc domain.TaxCategory
		if err := rows.Scan(&tc.ID, &tc.Name, &tc.IsDefault, &tc.CreatedAt, &tc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tax category: %w", err)
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

func (r *TaxCategoryRepo) Insert(ctx *rctx.Context, tc *domain.TaxCategory) error {
	_, err := ctx.Tx().ExecContext(ctx.Context(), `
		INSERT INTO tax_categories (id, name, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, tc.ID.String(), tc.Name, tc.IsDefault, tc.CreatedAt, tc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert tax category: %w", err)
	}
	return nil
}

func (r *TaxCategoryRepo) Update(ctx *rctx.Context, tc *domain.TaxCategory) error {
	res, err := ctx.Tx().ExecContext(ctx.Context(), `
		UPDATE tax_categories SET name = $2, is_default = $3, updated_at = $4 WHERE id = $1
	`, tc.ID.String(), tc.Name, tc.IsDefault, tc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update tax category: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return taxcategory.ErrNotFound
	}
	return nil
}

func (r *TaxCategoryRepo) DemoteDefaults(ctx *rctx.Context) error {
	_, err := ctx.Tx().ExecContext(ctx.Context(),
		`UPDATE tax_categories SET is_default = false WHERE is_default = true`,
	)
	if err != nil {
		return fmt.Errorf("demote default tax categories: %w", err)
	}
	return nil
}

func (r *TaxCategoryRepo) Remove(ctx *rctx.Context, id domain.ID) error {
	res, err := ctx.Tx().ExecContext(ctx.Context(),
		`DELETE FROM tax_categories WHERE id = $1`, id.String(),
	)
	if err != nil {
		return fmt.Errorf("delete tax category: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return taxcategory.ErrNotFound
	}
	return nil
}

func (r *TaxCategoryRepo) CountRatesForCategory(ctx *rctx.Context, id domain.ID) (int, error) {
	var n int
	err := ctx.Tx().QueryRowContext(ctx.Context(),
		`SELECT COUNT(*) FROM tax_rates WHERE category_id = $1`, id.String(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tax rates: %w", err)
	}
	return n, nil
}
