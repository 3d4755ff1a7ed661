package analytics

import "github.com/shopspring/decimal"

// Summarize folds a bucket series into range totals
func Summarize(buckets []DailyBucket) RangeSummary {
	sum := RangeSummary{Revenue: decimal.Zero}
	for _, b := range buckets {
		sum.Revenue = sum.Revenue.Add(b.Revenue)
		sum.UnitsSold += b.UnitsSold
	}
	return sum
}
