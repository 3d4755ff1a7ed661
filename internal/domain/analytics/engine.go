// Package analytics computes the admin dashboard's sales reports: a daily
// revenue/units series over a calendar range, its totals, a best-seller
// ranking and order completion counters. Everything here is pure and works
// on already-loaded records.
package analytics

import "time"

// Engine carries the reporting timezone and ranking depth
type Engine struct {
	loc  *time.Location
	topN int
}

// NewEngine creates an engine bucketing days in loc
func NewEngine(loc *time.Location, topN int) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Engine{loc: loc, topN: topN}
}

// Location returns the reporting timezone
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Today returns the current calendar day in the reporting timezone
func (e *Engine) Today() Date {
	return Today(e.loc)
}

// DefaultRange returns the trailing window ending today
func (e *Engine) DefaultRange() DateRange {
	return DefaultDateRange(e.Today())
}

// Report computes the full dashboard report for rng
func (e *Engine) Report(orders []Order, bestSellers []BestSeller, rng DateRange) *SalesReport {
	daily := DailySeriesFor(orders, rng, e.loc)
	return &SalesReport{
		Start:       rng.Start(),
		End:         rng.End(),
		Daily:       daily,
		Summary:     Summarize(daily),
		BestSellers: RankBestSellers(bestSellers, e.topN),
		Stats:       ComputeOrderStats(orders),
	}
}
