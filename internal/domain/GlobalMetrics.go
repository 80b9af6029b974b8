package domain

// GlobalMetrics é o consolidado das métricas de todas as lojas
type GlobalMetrics struct {
	TotalStores       int       `json:"total_stores"`
	TotalOrders       int       `json:"total_orders"`
	TotalRevenue      float64   `json:"total_revenue"`
	AverageOrderValue float64   `json:"average_order_value"`
	DateRange         DateRange `json:"date_range"`
}

// Aggregate soma as métricas das lojas e deriva o ticket médio global
func Aggregate(stores []StoreMetrics, dateRange DateRange) GlobalMetrics {
	global := GlobalMetrics{
		TotalStores: len(stores),
		DateRange:   dateRange,
	}

	for _, store := range stores {
		global.TotalOrders += store.Metrics.TotalOrders
		global.TotalRevenue += store.Metrics.TotalRevenue
	}

	global.AverageOrderValue = AverageOrderValue(global.TotalRevenue, global.TotalOrders)

	return global
}
