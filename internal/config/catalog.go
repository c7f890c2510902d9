package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/operation"
	"github.com/miroldev/vendure/internal/promotion"
	"github.com/miroldev/vendure/internal/shipping"
)

// Catalog is the operator-authored set of promotions and shipping methods.
// Every configurable operation in it has been bound against the registries,
// so downstream evaluation can trust argument types.
type Catalog struct {
	Promotions      []promotion.Promotion
	ShippingMethods []shipping.Method
}

type rawCatalog struct {
	Promotions      []rawPromotion      `yaml:"promotions"`
	ShippingMethods []rawShippingMethod `yaml:"shipping_methods"`
}

type rawPromotion struct {
	ID                    string               `yaml:"id"`
	Name                  string               `yaml:"name"`
	Enabled               bool                 `yaml:"enabled"`
	CouponCode            string               `yaml:"coupon_code"`
	StartsAt              *time.Time           `yaml:"starts_at"`
	EndsAt                *time.Time           `yaml:"ends_at"`
	UsageLimit            int                  `yaml:"usage_limit"`
	PerCustomerUsageLimit int                  `yaml:"per_customer_usage_limit"`
	Conditions            []operation.RawInput `yaml:"conditions"`
}

type rawShippingMethod struct {
	ID          string               `yaml:"id"`
	Code        string               `yaml:"code"`
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Checkers    []operation.RawInput `yaml:"checkers"`
	Calculator  operation.RawInput   `yaml:"calculator"`
}

// LoadCatalog reads the catalog file and binds every operation it contains
// against the given evaluator and shipping configuration. A promotion or
// method with an unknown code or malformed arguments fails the whole load;
// a partially bound catalog is worse than none.
func LoadCatalog(path string, ev *promotion.Evaluator, sc *shipping.Configuration) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	cat := &Catalog{}
	for _, rp := range raw.Promotions {
		p := promotion.Promotion{
			ID:                    domain.ID(rp.ID),
			Name:                  rp.Name,
			Enabled:               rp.Enabled,
			CouponCode:            rp.CouponCode,
			StartsAt:              rp.StartsAt,
			EndsAt:                rp.EndsAt,
			UsageLimit:            rp.UsageLimit,
			PerCustomerUsageLimit: rp.PerCustomerUsageLimit,
		}
		for _, in := range rp.Conditions {
			op, err := ev.ParseConditionInput(in)
			if err != nil {
				return nil, fmt.Errorf("promotion %q: %w", rp.Name, err)
			}
			p.Conditions = append(p.Conditions, op)
		}
		cat.Promotions = append(cat.Promotions, p)
	}

	for _, rm := range raw.ShippingMethods {
		m := shipping.Method{
			ID:          domain.ID(rm.ID),
			Code:        rm.Code,
			Name:        rm.Name,
			Description: rm.Description,
		}
		for _, in := range rm.Checkers {
			op, err := sc.ParseCheckerInput(in)
			if err != nil {
				return nil, fmt.Errorf("shipping method %q: %w", rm.Code, err)
			}
			m.Checkers = append(m.Checkers, op)
		}
		calc, err := sc.ParseCalculatorInput(rm.Calculator)
		if err != nil {
			return nil, fmt.Errorf("shipping method %q: %w", rm.Code, err)
		}
		m.Calculator = calc
		cat.ShippingMethods = append(cat.ShippingMethods, m)
	}

	return cat, nil
}
