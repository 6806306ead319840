package habitual

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
	"github.com/m04kA/GYM-ReservationService/pkg/ptr"
)

// 2025-06-02 is a Monday
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func activeMember(id int64, name string, schedules ...domain.RecurringSchedule) domain.Member {
	return domain.Member{
		ID:                 id,
		Name:               name,
		Status:             domain.MemberStatusActive,
		RecurringSchedules: schedules,
	}
}

func TestGenerateVirtual(t *testing.T) {
	tests := []struct {
		name    string
		members []domain.Member
		manual  []*domain.Reservation
		wantIDs []string
	}{
		{
			name: "active member with matching weekday",
			members: []domain.Member{
				activeMember(1, "Ana", domain.RecurringSchedule{Weekday: "Monday", StartTime: "09:00", EndTime: "10:00"}),
			},
			wantIDs: []string{"virtual-1-2025-06-02-09:00"},
		},
		{
			name: "weekday matching is case-insensitive",
			members: []domain.Member{
				activeMember(2, "Bruno", domain.RecurringSchedule{Weekday: "monday", StartTime: "18:00", EndTime: "19:00"}),
			},
			wantIDs: []string{"virtual-2-2025-06-02-18:00"},
		},
		{
			name: "two sessions on the same weekday yield two entries",
			members: []domain.Member{
				activeMember(3, "Clara",
					domain.RecurringSchedule{Weekday: "Monday", StartTime: "09:00", EndTime: "10:00"},
					domain.RecurringSchedule{Weekday: "Monday", StartTime: "18:00", EndTime: "19:00"},
				),
			},
			wantIDs: []string{"virtual-3-2025-06-02-09:00", "virtual-3-2025-06-02-18:00"},
		},
		{
			name: "non-matching weekday produces nothing",
			members: []domain.Member{
				activeMember(4, "Diego", domain.RecurringSchedule{Weekday: "Tuesday", StartTime: "09:00", EndTime: "10:00"}),
			},
			wantIDs: []string{},
		},
		{
			name: "inactive member is skipped",
			members: []domain.Member{
				{
					ID:     5,
					Name:   "Elena",
					Status: domain.MemberStatusInactive,
					RecurringSchedules: []domain.RecurringSchedule{
						{Weekday: "Monday", StartTime: "09:00", EndTime: "10:00"},
					},
				},
			},
			wantIDs: []string{},
		},
		{
			name: "schedule exception on the date suppresses all entries",
			members: []domain.Member{
				{
					ID:     6,
					Name:   "Facundo",
					Status: domain.MemberStatusActive,
					RecurringSchedules: []domain.RecurringSchedule{
						{Weekday: "Monday", StartTime: "09:00", EndTime: "10:00"},
						{Weekday: "Monday", StartTime: "18:00", EndTime: "19:00"},
					},
					ScheduleExceptions: []domain.ScheduleException{
						{Date: monday, Reason: "viaje"},
					},
				},
			},
			wantIDs: []string{},
		},
		{
			name: "manual reservation excludes the member for the whole date",
			members: []domain.Member{
				activeMember(7, "Gabriela",
					domain.RecurringSchedule{Weekday: "Monday", StartTime: "09:00", EndTime: "10:00"},
					domain.RecurringSchedule{Weekday: "Monday", StartTime: "18:00", EndTime: "19:00"},
				),
			},
			manual: []*domain.Reservation{
				{ID: 100, SlotID: 10, MemberID: ptr.Ptr(int64(7))},
			},
			wantIDs: []string{},
		},
		{
			name: "walk-in manual reservation excludes nobody",
			members: []domain.Member{
				activeMember(8, "Hugo", domain.RecurringSchedule{Weekday: "Monday", StartTime: "09:00", EndTime: "10:00"}),
			},
			manual: []*domain.Reservation{
				{ID: 101, SlotID: 10, ClientName: ptr.Ptr("Visitante")},
			},
			wantIDs: []string{"virtual-8-2025-06-02-09:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			virtual := GenerateVirtual(tt.members, monday, tt.manual)

			ids := make([]string, 0, len(virtual))
			for _, v := range virtual {
				ids = append(ids, v.SyntheticID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGenerateVirtualIsDeterministic(t *testing.T) {
	members := []domain.Member{
		activeMember(1, "Ana", domain.RecurringSchedule{Weekday: "Monday", StartTime: "09:00", EndTime: "10:00"}),
		activeMember(2, "Bruno", domain.RecurringSchedule{Weekday: "Monday", StartTime: "09:00", EndTime: "10:00"}),
	}

	first := GenerateVirtual(members, monday, nil)
	second := GenerateVirtual(members, monday, nil)

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
}

func TestGenerateVirtualCarriesMemberData(t *testing.T) {
	members := []domain.Member{
		activeMember(9, "Irene", domain.RecurringSchedule{Weekday: "Monday", StartTime: "07:30", EndTime: "08:30"}),
	}

	virtual := GenerateVirtual(members, monday, nil)
	require.Len(t, virtual, 1)

	assert.Equal(t, int64(9), virtual[0].MemberID)
	assert.Equal(t, "Irene", virtual[0].ClientName)
	assert.Equal(t, "07:30", virtual[0].StartTime.String())
	assert.Equal(t, "08:30", virtual[0].EndTime.String())
}
