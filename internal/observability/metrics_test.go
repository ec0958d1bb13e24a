package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsForTesting(t *testing.T) {
	m := NewMetricsForTesting()

	m.RecordsReconciled.WithLabelValues("created").Inc()
	m.RecordsReconciled.WithLabelValues("created").Inc()
	m.StatusTransitions.WithLabelValues("active", "resolved").Inc()
	m.OutagesPurged.Add(3)

	assert.InDelta(t, 2, testutil.ToFloat64(m.RecordsReconciled.WithLabelValues("created")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.StatusTransitions.WithLabelValues("active", "resolved")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.OutagesPurged), 0)

	// повторное создание не паникует
	assert.NotPanics(t, func() { NewMetricsForTesting() })
}
