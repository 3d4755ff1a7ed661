package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the engine's view of a customer order.
// A zero UpdatedAt means the timestamp is missing.
type Order struct {
	ID         string
	Completed  bool
	TotalPrice decimal.Decimal
	UpdatedAt  time.Time
	Products   []LineItem
}

// LineItem is a single product line on an order
type LineItem struct {
	ProductRef string
	Quantity   int
	Price      decimal.Decimal
}

// BestSeller is a pre-aggregated sales record for one book
type BestSeller struct {
	Title         string
	TotalQuantity int
	OrderCount    int
	NewPrice      decimal.Decimal
}

// DailyBucket is one calendar day of aggregated sales
type DailyBucket struct {
	DateKey   Date            `json:"date_key"`
	Label     string          `json:"label"`
	FullLabel string          `json:"full_label"`
	Revenue   decimal.Decimal `json:"revenue"`
	UnitsSold int             `json:"units_sold"`
}

// RangeSummary is the total over a bucket series
type RangeSummary struct {
	Revenue   decimal.Decimal `json:"revenue"`
	UnitsSold int             `json:"units_sold"`
}

// RankedEntry is a best seller enriched with its derived revenue
type RankedEntry struct {
	DisplayName string          `json:"display_name"`
	FullName    string          `json:"full_name"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// OrderStats holds date-independent order counters
type OrderStats struct {
	TotalOrders     int             `json:"total_orders"`
	CompletedOrders int             `json:"completed_orders"`
	PendingOrders   int             `json:"pending_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	CompletionRate  float64         `json:"completion_rate"`
}

// SalesReport bundles everything the dashboard renders for one range
type SalesReport struct {
	Start       Date          `json:"start"`
	End         Date          `json:"end"`
	Daily       []DailyBucket `json:"daily"`
	Summary     RangeSummary  `json:"summary"`
	BestSellers []RankedEntry `json:"best_sellers"`
	Stats       OrderStats    `json:"stats"`
}
