// Command evaluate runs the configured promotion and shipping rules against
// an order snapshot and reports which promotions apply and which shipping
// methods are eligible, with their quotes.
//
// Usage:
//
//	evaluate -config config.yaml -order order.json [-redis]
//
// With -redis, promotion usage counters in Redis are consulted so that
// promotions past their usage limits are reported as not applicable.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/miroldev/vendure/internal/config"
	"github.com/miroldev/vendure/internal/domain"
	"github.com/miroldev/vendure/internal/pkg/logger"
	"github.com/miroldev/vendure/internal/promotion"
	"github.com/miroldev/vendure/internal/rctx"
	"github.com/miroldev/vendure/internal/shipping"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	orderPath := flag.String("order", "", "path to order JSON snapshot (required)")
	useRedis := flag.Bool("redis", false, "consult Redis usage counters for promotion limits")
	flag.Parse()

	if *orderPath == "" {
		fmt.Fprintln(os.Stderr, "evaluate: -order is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		fatal("load config: %v", err)
	}
	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))

	registry, err := promotion.DefaultRegistry()
	if err != nil {
		fatal("build condition registry: %v", err)
	}
	evaluator := promotion.NewEvaluator(registry)

	shippingConfig, err := shipping.DefaultConfiguration()
	if err != nil {
		fatal("build shipping configuration: %v", err)
	}

	catalog, err := config.LoadCatalog(cfg.Catalog.Path, evaluator, shippingConfig)
	if err != nil {
		fatal("load catalog: %v", err)
	}
	logger.Info("catalog loaded",
		"promotions", len(catalog.Promotions),
		"shipping_methods", len(catalog.ShippingMethods))

	order, err := readOrder(*orderPath)
	if err != nil {
		fatal("read order: %v", err)
	}

	var usage *promotion.UsageTracker
	if *useRedis {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		usage = promotion.NewUsageTracker(rdb, "promotion:usage")
	}

	ctx := rctx.Background()
	now := time.Now().UTC()

	fmt.Printf("Order %s: %d unit(s), total %d %s\n\n",
		order.Code, order.TotalQuantity(), order.Total().Amount, order.CurrencyCode)

	fmt.Println("Promotions:")
	for i := range catalog.Promotions {
		p := &catalog.Promotions[i]
		applies, err := evaluator.Applies(ctx, p, order, now)
		if err != nil {
			fatal("evaluate promotion %q: %v", p.Name, err)
		}
		if applies && usage != nil {
			within, err := usage.WithinLimits(ctx.Context(), p, order.CustomerID)
			if err != nil {
				fatal("check usage limits for %q: %v", p.Name, err)
			}
			if !within {
				fmt.Printf("  %-30s no (usage limit reached)\n", p.Name)
				continue
			}
		}
		fmt.Printf("  %-30s %s\n", p.Name, yesNo(applies))
	}

	resolver := shipping.NewResolver(shippingConfig)
	eligible, err := resolver.ResolveEligible(ctx, catalog.ShippingMethods, order)
	if err != nil {
		fatal("resolve shipping methods: %v", err)
	}

	fmt.Println("\nEligible shipping methods:")
	if len(eligible) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, m := range eligible {
		quote, err := resolver.Price(ctx, m, order)
		if err != nil {
			fatal("price shipping method %q: %v", m.Code, err)
		}
		fmt.Printf("  %-30s %d %s (tax rate %s%%)\n",
			m.Code, quote.Price.Amount, quote.Price.Currency, quote.TaxRate.String())
	}
}

func readOrder(path string) (*domain.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("parse order %s: %w", path, err)
	}
	return &order, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "evaluate: "+format+"\n", args...)
	os.Exit(1)
}
