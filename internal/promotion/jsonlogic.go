package promotion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/diegoholiveira/jsonlogic/v3"

	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/operation"
	"github.com/miroldev/vendure/internal/rctx"
)

// CustomRule evaluates an operator-supplied JsonLogic expression against a
// read-only projection of the order. It exists for the long tail of
// promotion rules nobody wants to ship a dedicated condition for, e.g.
//
//	{">=": [{"var": "order.total_quantity"}, 5]}
func CustomRule() Condition {
	return New(operation.Definition{
		Code:        "custom_rule",
		Description: operation.English("If the order matches a custom rule expression"),
		Args: []operation.ArgSpec{
			{Name: "rule", Type: operation.ArgString, Required: true, UIComponent: "json-editor-form-input"},
		},
	}, func(_ *rctx.Context, order *domain.Order, args operation.Args) (bool, error) {
		rule := args.String("rule")
		if !json.Valid([]byte(rule)) {
			return false, fmt.Errorf("custom_rule: rule is not valid JSON")
		}

		data, err := json.Marshal(map[string]any{"order": orderData(order)})
		if err != nil {
			return false, fmt.Errorf("custom_rule: encode order: %w", err)
		}

		var result bytes.Buffer
		if err := jsonlogic.Apply(strings.NewReader(rule), bytes.NewReader(data), &result); err != nil {
			return false, fmt.Errorf("custom_rule: %w", err)
		}
		return truthy(result.Bytes()), nil
	})
}

// orderData flattens the order into the map shape rule expressions address.
// Totals are precomputed so expressions don't have to re-derive them from
// lines.
func orderData(order *domain.Order) map[string]any {
	lines := make([]any, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = map[string]any{
			"product_variant_id": l.ProductVariantID.String(),
			"quantity":           l.Quantity,
			"unit_price":         l.UnitPrice,
			"line_total":         l.LineTotal(),
		}
	}
	return map[string]any{
		"id":             order.ID.String(),
		"code":           order.Code,
		"customer_id":    order.CustomerID.String(),
		"currency_code":  order.CurrencyCode,
		"total":          order.Total().Amount,
		"total_quantity": order.TotalQuantity(),
		"lines":          lines,
	}
}

func truthy(result []byte) bool {
	var v any
	if err := json.Unmarshal(bytes.TrimSpace(result), &v); err != nil {
		return false
	}
	switch r := v.(type) {
	case bool:
		return r
	case float64:
		return r != 0
	case string:
		return r != ""
	case nil:
		return false
	default:
		return true
	}
}
