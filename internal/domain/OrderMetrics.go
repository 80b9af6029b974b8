package domain

// OrderMetrics são os pedidos e a receita de uma loja em um período
type OrderMetrics struct {
	TotalOrders       int       `json:"total_orders"`
	TotalRevenue      float64   `json:"total_revenue"`
	AverageOrderValue float64   `json:"average_order_value"`
	DateRange         DateRange `json:"date_range"`
}

// StoreMetrics combina a loja com o snapshot de métricas com que foi construída
type StoreMetrics struct {
	Store
	Metrics OrderMetrics `json:"metrics"`
}

// NewOrderMetrics monta as métricas calculando o ticket médio
func NewOrderMetrics(totalOrders int, totalRevenue float64, dateRange DateRange) OrderMetrics {
	return OrderMetrics{
		TotalOrders:       totalOrders,
		TotalRevenue:      totalRevenue,
		AverageOrderValue: AverageOrderValue(totalRevenue, totalOrders),
		DateRange:         dateRange,
	}
}

// AverageOrderValue retorna revenue/orders, ou 0 quando não há pedidos
func AverageOrderValue(totalRevenue float64, totalOrders int) float64 {
	if totalOrders <= 0 {
		return 0
	}
	return totalRevenue / float64(totalOrders)
}
