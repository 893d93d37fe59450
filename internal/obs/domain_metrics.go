package obs

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics groups Prometheus collectors for checkout outcomes.
type CheckoutMetrics struct {
	// Total counts checkout attempts by outcome.
	Total *prometheus.CounterVec
	// ItemsSold counts units sold through completed checkouts.
	ItemsSold prometheus.Counter
	// Revenue accumulates final totals of completed checkouts.
	Revenue prometheus.Counter
}

// NewCheckoutMetrics initialises and registers checkout collectors.
func NewCheckoutMetrics(namespace string, reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &CheckoutMetrics{
		Total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_total",
			Help:      "Count of checkout attempts by outcome.",
		}, []string{"outcome"}),
		ItemsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_items_sold_total",
			Help:      "Total units sold through completed checkouts.",
		}),
		Revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_revenue_total",
			Help:      "Sum of final totals of completed checkouts.",
		}),
	}
	mustRegisterCollector(reg, m.Total, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.Total = v
		}
	})
	mustRegisterCollector(reg, m.ItemsSold, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Counter); ok {
			m.ItemsSold = v
		}
	})
	mustRegisterCollector(reg, m.Revenue, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Counter); ok {
			m.Revenue = v
		}
	})
	return m
}
