package generating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
)

func rangeOfDays(days int) domain.DateRange {
	start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	return domain.DateRange{Start: start, End: start.AddDate(0, 0, days)}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		name string
		days int
		want float64
	}{
		{name: "Mesmo dia - piso de 0.5", days: 0, want: 0.5},
		{name: "7 dias - piso de 0.5", days: 7, want: 0.5},
		{name: "15 dias - exatamente 0.5", days: 15, want: 0.5},
		{name: "30 dias - fator 1.0", days: 30, want: 1.0},
		{name: "45 dias - fator 1.5", days: 45, want: 1.5},
		{name: "60 dias - fator 2.0", days: 60, want: 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScaleFactor(rangeOfDays(tt.days)))
		})
	}
}

func TestScaleFactor_InvertedRange(t *testing.T) {
	dr := rangeOfDays(60)
	inverted := domain.DateRange{Start: dr.End, End: dr.Start}

	assert.Equal(t, 2.0, ScaleFactor(inverted))
}

func TestGenerate_PinnedJitter(t *testing.T) {
	service := NewService(map[string]domain.Baseline{
		"store-a": {Orders: 100, Revenue: 20000},
		"store-b": {Orders: 200, Revenue: 40000},
	}, FixedJitter(1.0))

	dr := rangeOfDays(30)

	metricsA := service.Generate("store-a", dr)
	assert.Equal(t, 100, metricsA.TotalOrders)
	assert.Equal(t, 20000.0, metricsA.TotalRevenue)
	assert.Equal(t, 200.0, metricsA.AverageOrderValue)
	assert.Equal(t, dr, metricsA.DateRange)

	metricsB := service.Generate("store-b", rangeOfDays(60))
	assert.Equal(t, 400, metricsB.TotalOrders)
	assert.Equal(t, 80000.0, metricsB.TotalRevenue)
}

func TestGenerate_UnknownStoreUsesDefaultBaseline(t *testing.T) {
	service := NewService(nil, FixedJitter(1.0))

	metrics := service.Generate("does-not-exist", rangeOfDays(30))

	assert.Equal(t, DefaultBaseline.Orders, metrics.TotalOrders)
	assert.Equal(t, DefaultBaseline.Revenue, metrics.TotalRevenue)
	assert.Equal(t, DefaultBaseline, service.BaselineFor("does-not-exist"))
}

func TestGenerate_FloorsValues(t *testing.T) {
	service := NewService(map[string]domain.Baseline{
		"store-1": {Orders: 145, Revenue: 24580},
	}, FixedJitter(0.81))

	metrics := service.Generate("store-1", rangeOfDays(30))

	// 145*0.81 = 117.45 e 24580*0.81 = 19909.8
	assert.Equal(t, 117, metrics.TotalOrders)
	assert.Equal(t, 19909.0, metrics.TotalRevenue)
}

func TestGenerate_RandomJitterStaysWithinBounds(t *testing.T) {
	baselines := map[string]domain.Baseline{
		"store-1": {Orders: 145, Revenue: 24580},
		"store-5": {Orders: 72, Revenue: 12890},
	}
	service := NewService(baselines, UniformJitter())

	for _, days := range []int{0, 10, 30, 90} {
		dr := rangeOfDays(days)
		factor := ScaleFactor(dr)

		for i := 0; i < 200; i++ {
			for id, baseline := range baselines {
				metrics := service.Generate(id, dr)

				require.GreaterOrEqual(t, metrics.TotalOrders, 0)
				require.GreaterOrEqual(t, metrics.TotalRevenue, 0.0)
				require.GreaterOrEqual(t, metrics.AverageOrderValue, 0.0)

				assert.GreaterOrEqual(t, float64(metrics.TotalOrders), float64(int(float64(baseline.Orders)*factor*jitterMin)))
				assert.Less(t, float64(metrics.TotalOrders), float64(baseline.Orders)*factor*(jitterMin+jitterSpan))
				assert.Less(t, metrics.TotalRevenue, baseline.Revenue*factor*(jitterMin+jitterSpan))

				if metrics.TotalOrders == 0 {
					assert.Equal(t, 0.0, metrics.AverageOrderValue)
				} else {
					assert.InDelta(t, metrics.TotalRevenue/float64(metrics.TotalOrders), metrics.AverageOrderValue, 1e-9)
				}
			}
		}
	}
}

func TestGenerate_ZeroOrdersHaveZeroAverage(t *testing.T) {
	service := NewService(map[string]domain.Baseline{
		"tiny": {Orders: 1, Revenue: 10},
	}, FixedJitter(0.8))

	// 1*0.5*0.8 = 0.4 -> 0 pedidos
	metrics := service.Generate("tiny", rangeOfDays(1))

	assert.Equal(t, 0, metrics.TotalOrders)
	assert.Equal(t, 4.0, metrics.TotalRevenue)
	assert.Equal(t, 0.0, metrics.AverageOrderValue)
}

func TestUniformJitter(t *testing.T) {
	jitter := UniformJitter()

	for i := 0; i < 1000; i++ {
		v := jitter()
		assert.GreaterOrEqual(t, v, 0.8)
		assert.Less(t, v, 1.2)
	}
}
