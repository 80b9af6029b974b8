// Package generating produz as métricas sintéticas de pedidos de cada loja
package generating

import (
	"math"
	"math/rand/v2"

	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/generator.go -package=mocks

const (
	minScaleFactor      = 0.5
	referenceWindowDays = 30.0
	jitterMin           = 0.8
	jitterSpan          = 0.4
)

// DefaultBaseline é usada para lojas sem baseline cadastrada
var DefaultBaseline = domain.Baseline{Orders: 100, Revenue: 20000}

// JitterSource retorna um multiplicador aleatório em [0.8, 1.2)
type JitterSource func() float64

// UniformJitter sorteia o multiplicador de forma uniforme
func UniformJitter() JitterSource {
	return func() float64 {
		return jitterMin + rand.Float64()*jitterSpan
	}
}

// FixedJitter sempre retorna o mesmo multiplicador
func FixedJitter(value float64) JitterSource {
	return func() float64 {
		return value
	}
}

type MetricsGenerator interface {
	Generate(storeID string, dateRange domain.DateRange) domain.OrderMetrics
}

type Service struct {
	baselines map[string]domain.Baseline
	jitter    JitterSource
}

func NewService(baselines map[string]domain.Baseline, jitter JitterSource) *Service {
	if jitter == nil {
		jitter = UniformJitter()
	}

	copied := make(map[string]domain.Baseline, len(baselines))
	for id, baseline := range baselines {
		copied[id] = baseline
	}

	return &Service{
		baselines: copied,
		jitter:    jitter,
	}
}

// Generate gera as métricas da loja para o período. Nunca falha: lojas
// desconhecidas usam a DefaultBaseline.
func (s *Service) Generate(storeID string, dateRange domain.DateRange) domain.OrderMetrics {
	baseline := s.BaselineFor(storeID)
	factor := ScaleFactor(dateRange)

	totalOrders := int(math.Floor(float64(baseline.Orders) * factor * s.jitter()))
	totalRevenue := math.Floor(baseline.Revenue * factor * s.jitter())

	// jitter fora do intervalo esperado não pode gerar valores negativos
	if totalOrders < 0 {
		totalOrders = 0
	}
	if totalRevenue < 0 {
		totalRevenue = 0
	}

	return domain.NewOrderMetrics(totalOrders, totalRevenue, dateRange)
}

func (s *Service) BaselineFor(storeID string) domain.Baseline {
	if baseline, ok := s.baselines[storeID]; ok {
		return baseline
	}
	return DefaultBaseline
}

// ScaleFactor retorna max(0.5, dias/30)
func ScaleFactor(dateRange domain.DateRange) float64 {
	return math.Max(minScaleFactor, dateRange.Days()/referenceWindowDays)
}
