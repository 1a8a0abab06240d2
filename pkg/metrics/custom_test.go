package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMustRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		MustRegister()
		MustRegister()
	})

	err := prometheus.Register(OrdersExecutedTotal)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(OrdersExecutedTotal.WithLabelValues("Limit"))
	OrdersExecutedTotal.WithLabelValues("Limit").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(OrdersExecutedTotal.WithLabelValues("Limit")))
}
