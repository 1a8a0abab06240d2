package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	executed := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "tradelab", Name: "executed_total"}, []string{"type"})
	plain := prometheus.NewCounter(prometheus.CounterOpts{Namespace: "tradelab", Name: "plain_total"})
	other := prometheus.NewCounter(prometheus.CounterOpts{Namespace: "other", Name: "hits_total"})
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tradelab", Name: "depth"})
	reg.MustRegister(executed, plain, other, gauge)

	executed.WithLabelValues("Market").Add(2)
	executed.WithLabelValues("Limit").Inc()
	executed.WithLabelValues("Stop") // 零值不输出
	plain.Inc()
	other.Inc()
	gauge.Set(3)

	got, err := Snapshot(reg)
	require.NoError(t, err)
	assert.Equal(t, []Sample{
		{Key: "tradelab_executed_total{type=Limit}", Value: 1},
		{Key: "tradelab_executed_total{type=Market}", Value: 2},
		{Key: "tradelab_plain_total", Value: 1},
	}, got)
}

func TestSnapshot_Empty(t *testing.T) {
	got, err := Snapshot(prometheus.NewRegistry())
	require.NoError(t, err)
	assert.Empty(t, got)
}
