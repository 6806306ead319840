package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GYM-ReservationService/pkg/ptr"
)

func TestAttendanceFromFlag(t *testing.T) {
	assert.Equal(t, AttendancePending, AttendanceFromFlag(nil))
	assert.Equal(t, AttendanceAttended, AttendanceFromFlag(ptr.Ptr(true)))
	assert.Equal(t, AttendanceAbsent, AttendanceFromFlag(ptr.Ptr(false)))
}

func TestAttendanceStateFlag(t *testing.T) {
	assert.Nil(t, AttendancePending.Flag())

	attended := AttendanceAttended.Flag()
	require.NotNil(t, attended)
	assert.True(t, *attended)

	absent := AttendanceAbsent.Flag()
	require.NotNil(t, absent)
	assert.False(t, *absent)
}

func TestSyntheticID(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	id := SyntheticID(42, date, "09:00")
	assert.Equal(t, "virtual-42-2025-06-02-09:00", id)

	// Deterministic for the same triple
	assert.Equal(t, id, SyntheticID(42, date, "09:00"))
}

func TestReservationIsWalkIn(t *testing.T) {
	member := Reservation{MemberID: ptr.Ptr(int64(7))}
	walkIn := Reservation{ClientName: ptr.Ptr("Carlos")}

	assert.False(t, member.IsWalkIn())
	assert.True(t, walkIn.IsWalkIn())
}
