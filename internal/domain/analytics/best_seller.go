package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

const (
	// DefaultTopN is how many best sellers the dashboard shows
	DefaultTopN = 5

	displayNameRunes = 20
	ellipsis         = "..."
)

// RankBestSellers derives revenue for each entry, sorts by revenue
// descending and keeps the first limit entries. Entries with equal revenue
// keep their input order. A limit <= 0 means DefaultTopN.
func RankBestSellers(entries []BestSeller, limit int) []RankedEntry {
	if limit <= 0 {
		limit = DefaultTopN
	}

	ranked := make([]RankedEntry, 0, len(entries))
	for _, e := range entries {
		qty := soldQuantity(e)
		ranked = append(ranked, RankedEntry{
			DisplayName: truncateTitle(e.Title),
			FullName:    e.Title,
			Quantity:    qty,
			Revenue:     decimal.NewFromInt(int64(qty)).Mul(e.NewPrice).Round(2),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// soldQuantity prefers the summed quantity and falls back to the order count.
// Zero counts as absent.
func soldQuantity(e BestSeller) int {
	if e.TotalQuantity > 0 {
		return e.TotalQuantity
	}
	if e.OrderCount > 0 {
		return e.OrderCount
	}
	return 0
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= displayNameRunes {
		return title
	}
	return string(runes[:displayNameRunes]) + ellipsis
}
