package analytics

import "github.com/shopspring/decimal"

// ComputeOrderStats counts orders by completion over the whole order set.
// Only completed orders contribute revenue.
func ComputeOrderStats(orders []Order) OrderStats {
	stats := OrderStats{TotalRevenue: decimal.Zero}
	for _, o := range orders {
		stats.TotalOrders++
		if o.Completed {
			stats.CompletedOrders++
			stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalPrice)
		}
	}
	stats.PendingOrders = stats.TotalOrders - stats.CompletedOrders
	if stats.TotalOrders > 0 {
		stats.CompletionRate = float64(stats.CompletedOrders) / float64(stats.TotalOrders)
	}
	return stats
}
