package promotion

import (
	"time"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/operation"
)

// Promotion is an operator-configured discount campaign. Its conditions are
// bound configurable operations owned by the promotion; they are replaced
// wholesale when the operator reconfigures it.
type Promotion struct {
	ID                    domain.ID                         `json:"id"`
	Name                  string                            `json:"name"`
	Enabled               bool                              `json:"enabled"`
	CouponCode            string                            `json:"coupon_code,omitempty"`
	StartsAt              *time.Time                        `json:"starts_at,omitempty"`
	EndsAt                *time.Time                        `json:"ends_at,omitempty"`
	UsageLimit            int                               `json:"usage_limit,omitempty"`
	PerCustomerUsageLimit int                               `json:"per_customer_usage_limit,omitempty"`
	Conditions            []operation.ConfigurableOperation `json:"conditions"`
}

// ActiveAt reports whether the promotion is enabled and inside its window.
func (p *Promotion) ActiveAt(now time.Time) bool {
	if !p.Enabled {
		return false
	}
	if p.StartsAt != nil && now.Before(*p.StartsAt) {
		return false
	}
	if p.EndsAt != nil && now.After(*p.EndsAt) {
		return false
	}
	return true
}
