package metrics_test

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filterkit/pkg/metrics"
	"github.com/dmitrymomot/filterkit/pkg/rangeslider"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	require.NotNil(t, m.Counter)
	return m.GetCounter().GetValue()
}

func TestCollector_CountsEscalatedErrors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.New(metrics.WithRegistry(reg))

	var forwarded []*rangeslider.Error
	root, err := rangeslider.New(rangeslider.Config{}, rangeslider.WithErrorHandler(
		c.ErrorHandler(func(e *rangeslider.Error) { forwarded = append(forwarded, e) }),
	))
	require.NoError(t, err)

	child, err := root.CreateChild(rangeslider.Config{Max: 500, Step: 10})
	require.NoError(t, err)

	require.Error(t, root.Update(math.NaN(), 1))
	require.Error(t, child.Update(math.NaN(), 1))
	require.Error(t, child.SetStep(0.5))

	assert.Equal(t, 1.0, counterValue(t, c.Errors(rangeslider.KindInvalidInput, "", 0)))
	assert.Equal(t, 1.0, counterValue(t, c.Errors(rangeslider.KindInvalidInput, "", 1)))
	assert.Equal(t, 1.0, counterValue(t, c.Errors(rangeslider.KindInvalidStepRange, "step", 1)))
	assert.Len(t, forwarded, 3)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "filterkit_rangeslider_errors_total", families[0].GetName())
}

func TestCollector_Options(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.New(
		metrics.WithRegistry(reg),
		metrics.WithNamespace("shop"),
		metrics.WithSubsystem("price"),
		metrics.WithConstLabels(prometheus.Labels{"filter": "catalog"}),
	)

	c.Observe(&rangeslider.Error{Kind: rangeslider.KindInvalidMaxRange, Field: "max"})

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "shop_price_errors_total", families[0].GetName())

	metric := families[0].GetMetric()
	require.Len(t, metric, 1)
	labels := map[string]string{}
	for _, lp := range metric[0].GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	assert.Equal(t, map[string]string{
		"filter": "catalog",
		"kind":   "INVALID_MAX_RANGE",
		"field":  "max",
		"level":  "0",
	}, labels)
	assert.Equal(t, 1.0, metric[0].GetCounter().GetValue())
}

func TestCollector_NilNext(t *testing.T) {
	t.Parallel()

	c := metrics.New(metrics.WithRegistry(prometheus.NewRegistry()))
	h := c.ErrorHandler(nil)

	assert.NotPanics(t, func() {
		h(&rangeslider.Error{Kind: rangeslider.KindInvalidInput})
	})
	assert.Equal(t, 1.0, counterValue(t, c.Errors(rangeslider.KindInvalidInput, "", 0)))
}
