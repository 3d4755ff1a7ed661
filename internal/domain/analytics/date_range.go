package analytics

import "errors"

// DefaultWindowDays is the length of the default trailing window
const DefaultWindowDays = 7

// ErrInvertedRange is returned when a range is built with start after end
var ErrInvertedRange = errors.New("date range start is after end")

// DateRange is an inclusive [start, end] range of calendar days.
// The mutators keep start <= end at all times.
type DateRange struct {
	start Date
	end   Date
}

// DefaultDateRange returns the trailing 7-day window ending today
func DefaultDateRange(today Date) DateRange {
	return DateRange{
		start: today.AddDays(-(DefaultWindowDays - 1)),
		end:   today,
	}
}

// NewDateRange builds a range from explicit bounds
func NewDateRange(start, end Date) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, ErrInvertedRange
	}
	return DateRange{start: start, end: end}, nil
}

// Start returns the first day of the range
func (r DateRange) Start() Date { return r.start }

// End returns the last day of the range
func (r DateRange) End() Date { return r.end }

// SetStart moves the start. A start past the current end collapses the
// range onto the new day.
func (r *DateRange) SetStart(d Date) {
	if d.After(r.end) {
		r.start, r.end = d, d
		return
	}
	r.start = d
}

// SetEnd moves the end. An end before the current start collapses the
// range onto the new day.
func (r *DateRange) SetEnd(d Date) {
	if d.Before(r.start) {
		r.start, r.end = d, d
		return
	}
	r.end = d
}

// Reset restores the default trailing window
func (r *DateRange) Reset(today Date) {
	*r = DefaultDateRange(today)
}

// Days returns the number of calendar days in the range, inclusive
func (r DateRange) Days() int {
	if r.start.After(r.end) {
		return 0
	}
	return r.start.DaysUntil(r.end) + 1
}

// Dates lists every day of the range in order
func (r DateRange) Dates() []Date {
	return datesBetween(r.start, r.end)
}

func datesBetween(start, end Date) []Date {
	if start.After(end) {
		return []Date{}
	}
	dates := make([]Date, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}
