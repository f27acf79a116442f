package model

import "time"

// SalaryDay is the day of month reserved for salary records.
const SalaryDay = 5

// DateOf truncates t to a calendar date at UTC midnight, keeping t's own
// year, month and day.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
