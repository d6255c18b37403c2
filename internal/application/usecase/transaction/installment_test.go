package transaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInstallmentDate(t *testing.T) {
	t.Run("keeps the day across regular months", func(t *testing.T) {
		start := date(2025, time.January, 11)

		assert.Equal(t, date(2025, time.January, 11), installmentDate(start, 0))
		assert.Equal(t, date(2025, time.February, 11), installmentDate(start, 1))
		assert.Equal(t, date(2025, time.March, 11), installmentDate(start, 2))
	})

	t.Run("clamps the 31st to shorter months", func(t *testing.T) {
		start := date(2025, time.January, 31)

		assert.Equal(t, date(2025, time.February, 28), installmentDate(start, 1))
		assert.Equal(t, date(2025, time.March, 31), installmentDate(start, 2))
		assert.Equal(t, date(2025, time.April, 30), installmentDate(start, 3))
	})

	t.Run("clamps to February 29 in leap years", func(t *testing.T) {
		start := date(2024, time.January, 31)

		assert.Equal(t, date(2024, time.February, 29), installmentDate(start, 1))
	})

	t.Run("crosses the year boundary", func(t *testing.T) {
		start := date(2025, time.November, 15)

		assert.Equal(t, date(2025, time.December, 15), installmentDate(start, 1))
		assert.Equal(t, date(2026, time.January, 15), installmentDate(start, 2))
	})
}

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t, 31, lastDayOfMonth(date(2025, time.January, 1)))
	assert.Equal(t, 28, lastDayOfMonth(date(2025, time.February, 1)))
	assert.Equal(t, 29, lastDayOfMonth(date(2024, time.February, 1)))
	assert.Equal(t, 30, lastDayOfMonth(date(2025, time.April, 1)))
}
