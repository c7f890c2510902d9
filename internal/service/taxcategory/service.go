package taxcategory

import (
	"fmt"
	"strings"
	"time"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/eventbus"
	"github.com/miroldev/vendure/internal/pkg/logger"
	"github.com/miroldev/vendure/internal/rctx"
)

const entityName = "tax_category"

// Service implements tax-category business logic. It is safe for concurrent
// use if the underlying repository is; the default invariant relies on the
// request transaction's isolation (serializable or equivalent row locking),
// which the repository layer provides.
type Service struct {
	repo   Repository
	events eventbus.Publisher
}

// NewService creates a tax-category service backed by the given repository
// and event publisher.
func NewService(repo Repository, events eventbus.Publisher) *Service {
	return &Service{repo: repo, events: events}
}

// FindAll returns all tax categories.
func (s *Service) FindAll(ctx *rctx.Context) ([]domain.TaxCategory, error) {
	return s.repo.FindAll(ctx)
}

// FindOne returns a single tax category, or ErrNotFound.
func (s *Service) FindOne(ctx *rctx.Context, id domain.ID) (*domain.TaxCategory, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateInput holds the fields for creating a tax category.
type CreateInput struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// Create validates and persists a new tax category. When the new category is
// the default, every existing default is demoted first, within the same
// transaction as the insert, so that exactly one default exists afterwards.
func (s *Service) Create(ctx *rctx.Context, input CreateInput) (*domain.TaxCategory, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if input.IsDefault {
		if err := s.repo.DemoteDefaults(ctx); err != nil {
			return nil, fmt.Errorf("demote existing defaults: %w", err)
		}
	}

	now := time.Now().UTC()
	tc := &domain.TaxCategory{
		ID:        domain.NewID(),
		Name:      name,
		IsDefault: input.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, tc); err != nil {
		return nil, fmt.Errorf("insert tax category: %w", err)
	}

	s.publish(ctx, eventbus.Created, tc.ID, input)
	return tc, nil
}

// UpdateInput holds the mutable fields for a tax-category update. Nil fields
// are left unchanged.
type UpdateInput struct {
	Name      *string `json:"name,omitempty"`
	IsDefault *bool   `json:"is_default,omitempty"`
}

// Update applies a partial patch to an existing category. Setting IsDefault
// to true demotes all other defaults in the same transaction as the update.
func (s *Service) Update(ctx *rctx.Context, id domain.ID, input UpdateInput) (*domain.TaxCategory, error) {
	tc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		tc.Name = name
	}
	if input.IsDefault != nil {
		if *input.IsDefault {
			if err := s.repo.DemoteDefaults(ctx); err != nil {
				return nil, fmt.Errorf("demote existing defaults: %w", err)
			}
		}
		tc.IsDefault = *input.IsDefault
	}
	tc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, tc); err != nil {
		return nil, fmt.Errorf("update tax category: %w", err)
	}

	s.publish(ctx, eventbus.Updated, tc.ID, input)
	return tc, nil
}

// Delete removes a tax category unless tax rates still reference it. The
// refusal is a DeletionResult value, not an error: callers render it as a
// normal response. Storage failures during the remove itself are likewise
// converted to NotDeleted, carrying the failure detail.
func (s *Service) Delete(ctx *rctx.Context, id domain.ID) (domain.DeletionResult, error) {
	tc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.DeletionResult{}, err
	}

	dependents, err := s.repo.CountRatesForCategory(ctx, id)
	if err != nil {
		return domain.DeletionResult{}, fmt.Errorf("count dependent tax rates: %w", err)
	}
	if dependents > 0 {
		return domain.NotDeleted(fmt.Sprintf(
			"cannot remove tax category %q: it is referenced by %d tax rate(s)", tc.Name, dependents)), nil
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		logger.Warn("tax category delete failed", "id", tc.ID.String(), "error", err.Error())
		return domain.NotDeleted(err.Error()), nil
	}

	s.publish(ctx, eventbus.Deleted, tc.ID, tc)
	return domain.Deleted(), nil
}

// publish emits the per-mutation domain event. Publishing happens after the
// local write has succeeded; a delivery failure is logged, never surfaced as
// a failure of the already-successful mutation.
func (s *Service) publish(ctx *rctx.Context, kind eventbus.Kind, id domain.ID, data any) {
	evt := eventbus.Event{
		Kind:      kind,
		Entity:    entityName,
		SubjectID: id,
		Data:      data,
		Locale:    ctx.Locale(),
	}
	if err := s.events.Publish(ctx.Context(), evt); err != nil {
		logger.Warn("publish tax category event failed", "kind", string(kind), "id", id.String(), "error", err.Error())
	}
}
