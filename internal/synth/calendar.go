package synth

import (
	"time"

	"github.com/fingen-dev/fingen/internal/model"
)

// EvenlySpacedDates splits [start, end] into n evenly spaced instants, both
// ends included, and returns their calendar dates. A single slot gets start.
func EvenlySpacedDates(start, end time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	dates := make([]time.Time, n)
	dates[0] = model.DateOf(start)
	if n == 1 {
		return dates
	}

	span := float64(end.Sub(start))
	for i := 1; i < n-1; i++ {
		offset := time.Duration(span * float64(i) / float64(n-1))
		dates[i] = model.DateOf(start.Add(offset))
	}
	dates[n-1] = model.DateOf(end)
	return dates
}

// SalaryDates returns the salary day of every month that falls inside [start, end].
func SalaryDates(start, end time.Time) []time.Time {
	first, last := model.DateOf(start), model.DateOf(end)

	var dates []time.Time
	for m := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC); !m.After(last); m = m.AddDate(0, 1, 0) {
		d := time.Date(m.Year(), m.Month(), model.SalaryDay, 0, 0, 0, 0, time.UTC)
		if d.Before(first) || d.After(last) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}
