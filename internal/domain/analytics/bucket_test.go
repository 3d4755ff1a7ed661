package analytics

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func completedAt(at time.Time, total string, quantities ...int) Order {
	items := make([]LineItem, 0, len(quantities))
	for _, q := range quantities {
		items = append(items, LineItem{Quantity: q})
	}
	return Order{Completed: true, TotalPrice: money(total), UpdatedAt: at, Products: items}
}

func TestDailySeries_SingleDayRange(t *testing.T) {
	d := day(2024, time.March, 5)
	buckets := DailySeries(nil, d, d, time.UTC)

	require.Len(t, buckets, 1)
	assert.Equal(t, d, buckets[0].DateKey)
	assert.True(t, buckets[0].Revenue.IsZero())
	assert.Equal(t, 0, buckets[0].UnitsSold)
}

func TestDailySeries_ConsecutiveDays(t *testing.T) {
	start := day(2024, time.February, 25)
	end := day(2024, time.March, 3)

	buckets := DailySeries(nil, start, end, time.UTC)

	require.Len(t, buckets, 8)
	for i, b := range buckets {
		assert.Equal(t, start.AddDays(i), b.DateKey)
	}
	assert.Equal(t, day(2024, time.February, 29), buckets[4].DateKey)
}

func TestDailySeries_InvertedRangeIsEmpty(t *testing.T) {
	buckets := DailySeries(nil, day(2024, time.March, 2), day(2024, time.March, 1), time.UTC)
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}

func TestDailySeries_RoundsAndSumsUnits(t *testing.T) {
	loc := time.UTC
	day1 := day(2024, time.March, 5)
	at := time.Date(2024, time.March, 5, 10, 0, 0, 0, loc)

	orders := []Order{
		completedAt(at, "20.005", 2),
		completedAt(at.Add(time.Hour), "10", 1),
	}

	buckets := DailySeries(orders, day1.AddDays(-1), day1.AddDays(1), loc)

	require.Len(t, buckets, 3)
	assert.True(t, buckets[0].Revenue.IsZero())
	assert.Equal(t, 0, buckets[0].UnitsSold)

	assert.Equal(t, "30.01", buckets[1].Revenue.StringFixed(2))
	assert.Equal(t, 3, buckets[1].UnitsSold)

	assert.True(t, buckets[2].Revenue.IsZero())
	assert.Equal(t, 0, buckets[2].UnitsSold)
}

func TestDailySeries_ExcludesIncompleteAndUndated(t *testing.T) {
	at := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	orders := []Order{
		{Completed: false, TotalPrice: money("99"), UpdatedAt: at, Products: []LineItem{{Quantity: 9}}},
		{Completed: true, TotalPrice: money("50"), Products: []LineItem{{Quantity: 5}}},
		completedAt(at, "5", 1),
	}

	buckets := DailySeries(orders, day(2024, time.March, 5), day(2024, time.March, 5), time.UTC)

	require.Len(t, buckets, 1)
	assert.Equal(t, "5.00", buckets[0].Revenue.StringFixed(2))
	assert.Equal(t, 1, buckets[0].UnitsSold)
}

func TestDailySeries_BoundaryDaysInclusive(t *testing.T) {
	loc := time.UTC
	start := day(2024, time.March, 5)
	end := day(2024, time.March, 6)

	orders := []Order{
		completedAt(start.StartIn(loc), "1", 1),
		completedAt(end.EndIn(loc), "2", 1),
		completedAt(start.StartIn(loc).Add(-time.Millisecond), "100", 100),
		completedAt(end.EndIn(loc).Add(time.Millisecond), "100", 100),
	}

	buckets := DailySeries(orders, start, end, loc)

	require.Len(t, buckets, 2)
	assert.Equal(t, "1.00", buckets[0].Revenue.StringFixed(2))
	assert.Equal(t, "2.00", buckets[1].Revenue.StringFixed(2))
	assert.Equal(t, 2, Summarize(buckets).UnitsSold)
}

func TestDailySeries_UsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	// 23:30 local on March 5 is already March 6 in UTC
	at := time.Date(2024, time.March, 5, 23, 30, 0, 0, loc)

	buckets := DailySeries([]Order{completedAt(at, "12.50", 2)}, day(2024, time.March, 5), day(2024, time.March, 6), loc)

	require.Len(t, buckets, 2)
	assert.Equal(t, 2, buckets[0].UnitsSold)
	assert.Equal(t, 0, buckets[1].UnitsSold)

	utcBuckets := DailySeries([]Order{completedAt(at, "12.50", 2)}, day(2024, time.March, 5), day(2024, time.March, 6), time.UTC)
	assert.Equal(t, 0, utcBuckets[0].UnitsSold)
	assert.Equal(t, 2, utcBuckets[1].UnitsSold)
}

func TestDailySeries_AcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// clocks spring forward on 2024-03-10
	start := day(2024, time.March, 9)
	end := day(2024, time.March, 11)
	orders := []Order{
		completedAt(time.Date(2024, time.March, 10, 23, 59, 0, 0, loc), "3", 1),
		completedAt(time.Date(2024, time.March, 11, 0, 1, 0, 0, loc), "4", 1),
	}

	buckets := DailySeries(orders, start, end, loc)

	require.Len(t, buckets, 3)
	assert.Equal(t, []Date{start, start.AddDays(1), end}, []Date{buckets[0].DateKey, buckets[1].DateKey, buckets[2].DateKey})
	assert.Equal(t, "3.00", buckets[1].Revenue.StringFixed(2))
	assert.Equal(t, "4.00", buckets[2].Revenue.StringFixed(2))
}

func TestDailySeries_UnitsMatchCompletedInRange(t *testing.T) {
	loc := time.UTC
	start := day(2024, time.January, 1)
	end := day(2024, time.January, 31)

	var orders []Order
	want := 0
	for i := 0; i < 60; i++ {
		at := start.StartIn(loc).Add(time.Duration(i) * 13 * time.Hour)
		o := completedAt(at, "1.10", i%4, i%3)
		o.Completed = i%5 != 0
		orders = append(orders, o)

		if o.Completed && !DateOf(at, loc).After(end) {
			want += i%4 + i%3
		}
	}

	buckets := DailySeries(orders, start, end, loc)

	assert.Len(t, buckets, 31)
	assert.Equal(t, want, Summarize(buckets).UnitsSold)
}

func TestDailySeries_MissingFieldsCountAsZero(t *testing.T) {
	at := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)
	orders := []Order{
		{Completed: true, UpdatedAt: at},
		{Completed: true, UpdatedAt: at, Products: []LineItem{{Quantity: -2}, {Quantity: 3}}},
	}

	buckets := DailySeries(orders, day(2024, time.March, 5), day(2024, time.March, 5), time.UTC)

	require.Len(t, buckets, 1)
	assert.True(t, buckets[0].Revenue.IsZero())
	assert.Equal(t, 3, buckets[0].UnitsSold)
}

func TestDailySeries_Labels(t *testing.T) {
	buckets := DailySeries(nil, day(2024, time.March, 5), day(2024, time.March, 5), time.UTC)

	require.Len(t, buckets, 1)
	assert.Equal(t, "Mar 05", buckets[0].Label)
	assert.Equal(t, "Tue, Mar 05 2024", buckets[0].FullLabel)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, 0, Summarize(nil).UnitsSold)
	assert.True(t, Summarize(nil).Revenue.IsZero())

	sum := Summarize([]DailyBucket{
		{Revenue: money("30.01"), UnitsSold: 3},
		{Revenue: money("0"), UnitsSold: 0},
		{Revenue: money("12.49"), UnitsSold: 4},
	})
	assert.Equal(t, "42.50", sum.Revenue.StringFixed(2))
	assert.Equal(t, 7, sum.UnitsSold)
}
