package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name      string
		from      domain.AttendanceState
		to        domain.AttendanceState
		wantGated bool
		wantErr   bool
	}{
		{"pending to attended is never gated", domain.AttendancePending, domain.AttendanceAttended, false, false},
		{"pending to absent is window gated", domain.AttendancePending, domain.AttendanceAbsent, true, false},
		{"attended to absent is window gated", domain.AttendanceAttended, domain.AttendanceAbsent, true, false},
		{"absent to attended is never gated", domain.AttendanceAbsent, domain.AttendanceAttended, false, false},
		{"no transition back to pending from attended", domain.AttendanceAttended, domain.AttendancePending, false, true},
		{"no transition back to pending from absent", domain.AttendanceAbsent, domain.AttendancePending, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gated, err := Plan(tt.from, tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantGated, gated)
		})
	}
}

func TestPlanSameStateIsNoOp(t *testing.T) {
	for _, state := range []domain.AttendanceState{
		domain.AttendancePending,
		domain.AttendanceAttended,
		domain.AttendanceAbsent,
	} {
		gated, err := Plan(state, state)
		assert.NoError(t, err)
		assert.False(t, gated)
	}
}
