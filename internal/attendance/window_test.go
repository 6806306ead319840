package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

func TestCheckWindow(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	window := 24 * time.Hour

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"one hour before start", start.Add(-time.Hour), ErrNotStarted},
		{"one minute before start", start.Add(-time.Minute), ErrNotStarted},
		{"exactly at start", start, nil},
		{"one hour after start", start.Add(time.Hour), nil},
		{"23 hours after start", start.Add(23 * time.Hour), nil},
		{"exactly at window edge", start.Add(24 * time.Hour), nil},
		{"one minute past the window", start.Add(24*time.Hour + time.Minute), ErrWindowExpired},
		{"days later", start.Add(72 * time.Hour), ErrWindowExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckWindow(start, tt.now, window)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckSlotWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	// 10:00 in Buenos Aires (UTC-3) is 13:00 UTC
	slot := &domain.Slot{
		ID:        1,
		Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	}
	window := 24 * time.Hour

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{
			name:    "local morning before the session",
			now:     time.Date(2025, 6, 2, 9, 0, 0, 0, loc),
			wantErr: ErrNotStarted,
		},
		{
			name: "right at the local start time",
			now:  time.Date(2025, 6, 2, 10, 0, 0, 0, loc),
		},
		{
			name: "same local time next day is still inside the window",
			now:  time.Date(2025, 6, 3, 10, 0, 0, 0, loc),
		},
		{
			name:    "one minute past the window next day",
			now:     time.Date(2025, 6, 3, 10, 1, 0, 0, loc),
			wantErr: ErrWindowExpired,
		},
		{
			name: "UTC instant maps back into the window",
			now:  time.Date(2025, 6, 3, 12, 59, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSlotWindow(slot, tt.now, loc, window)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckSlotWindowInvalidStartTime(t *testing.T) {
	loc := time.UTC
	slot := &domain.Slot{
		ID:        2,
		Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "bad",
	}

	err := CheckSlotWindow(slot, time.Now(), loc, 24*time.Hour)
	assert.Error(t, err)
}
