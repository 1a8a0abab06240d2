package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	OrdersExecutedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradelab",
			Name:      "orders_executed_total",
			Help:      "Total number of orders executed, by order type.",
		},
		[]string{"type"},
	)

	OrderRejectTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradelab",
			Name:      "order_reject_total",
			Help:      "Total number of orders rejected by validation.",
		},
		[]string{"reason"},
	)

	MarketDataLoggedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradelab",
			Name:      "market_data_logged_total",
			Help:      "Total number of market data rows logged.",
		},
		[]string{"symbol"},
	)

	CSVWriteErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tradelab",
			Name:      "csv_write_errors_total",
			Help:      "Total number of failed CSV appends.",
		},
		[]string{"file"}, // market_data / orders
	)
)

var registerOnce sync.Once

// MustRegister 注册到默认 registry，重复调用安全
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(OrdersExecutedTotal, OrderRejectTotal, MarketDataLoggedTotal, CSVWriteErrorsTotal)
	})
}
