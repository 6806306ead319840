package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayName(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"sunday", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "Sunday"},
		{"monday", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), "Monday"},
		{"saturday", time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), "Saturday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekdayName(tt.date))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	assert.NoError(t, err)

	// A late-evening local timestamp must keep its calendar date, even though
	// the same instant already falls on the next day in UTC.
	late := time.Date(2025, 6, 2, 23, 30, 0, 0, loc)
	normalized := NormalizeDate(late)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), normalized)
	assert.Equal(t, "Monday", WeekdayName(normalized))
}

func TestSameDate(t *testing.T) {
	a := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	b := time.Date(2025, 6, 2, 22, 45, 0, 0, time.UTC)
	c := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
}
