// Package transaction contains transaction-related use cases.
package transaction

import "time"

// installmentDate returns the date for installment i (zero based) of a
// schedule starting at start. Each installment lands i calendar months
// later on the same day of month, clamped to the last day when the target
// month is shorter. Adding months to the first of the month avoids
// time.AddDate's overflow into the following month.
func installmentDate(start time.Time, i int) time.Time {
	firstOfMonth := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	target := firstOfMonth.AddDate(0, i, 0)

	day := start.Day()
	if last := lastDayOfMonth(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, start.Location())
}

// lastDayOfMonth returns the number of days in t's month.
func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
