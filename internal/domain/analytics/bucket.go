package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	labelLayout     = "Jan 02"
	fullLabelLayout = "Mon, Jan 02 2006"
)

type dayTotals struct {
	revenue decimal.Decimal
	units   int
}

// DailySeries buckets completed orders by the local calendar day of their
// UpdatedAt and returns one bucket per day from start to end inclusive.
// Days without activity get a zero bucket. An inverted range yields an
// empty series.
func DailySeries(orders []Order, start, end Date, loc *time.Location) []DailyBucket {
	if loc == nil {
		loc = time.UTC
	}
	if start.After(end) {
		return []DailyBucket{}
	}

	lower := start.StartIn(loc)
	upper := end.EndIn(loc)

	totals := make(map[Date]*dayTotals)
	for _, o := range orders {
		if !o.Completed || o.UpdatedAt.IsZero() {
			continue
		}
		if o.UpdatedAt.Before(lower) || o.UpdatedAt.After(upper) {
			continue
		}

		key := DateOf(o.UpdatedAt, loc)
		t, ok := totals[key]
		if !ok {
			t = &dayTotals{}
			totals[key] = t
		}
		t.revenue = t.revenue.Add(o.TotalPrice)
		t.units += unitsOf(o)
	}

	days := datesBetween(start, end)
	buckets := make([]DailyBucket, 0, len(days))
	for _, d := range days {
		b := newBucket(d)
		if t, ok := totals[d]; ok {
			b.Revenue = t.revenue.Round(2)
			b.UnitsSold = t.units
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// DailySeriesFor is DailySeries over a DateRange
func DailySeriesFor(orders []Order, rng DateRange, loc *time.Location) []DailyBucket {
	return DailySeries(orders, rng.Start(), rng.End(), loc)
}

func newBucket(d Date) DailyBucket {
	// labels are rendered from the UTC anchor so they never shift with the zone
	t := d.utc()
	return DailyBucket{
		DateKey:   d,
		Label:     t.Format(labelLayout),
		FullLabel: t.Format(fullLabelLayout),
		Revenue:   decimal.Zero,
	}
}

func unitsOf(o Order) int {
	units := 0
	for _, p := range o.Products {
		if p.Quantity > 0 {
			units += p.Quantity
		}
	}
	return units
}
