package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/GYM-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/GYM-ReservationService/internal/infra/storage/slot"
	"github.com/m04kA/GYM-ReservationService/pkg/ptr"
)

// 2025-06-02 is a Monday
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

type fakeReservationRepo struct {
	forSlot  []*domain.Reservation
	forDate  []domain.SlottedReservation
	existing *domain.Reservation
	created  *domain.Reservation
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	out := *res
	out.ID = 101
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeReservationRepo) FindByMemberAndSlot(ctx context.Context, memberID, slotID int64) (*domain.Reservation, error) {
	if f.existing != nil && f.existing.MemberID != nil && *f.existing.MemberID == memberID && f.existing.SlotID == slotID {
		return f.existing, nil
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) ListForSlot(ctx context.Context, slotID int64) ([]*domain.Reservation, error) {
	return f.forSlot, nil
}

func (f *fakeReservationRepo) ListByDate(ctx context.Context, date time.Time) ([]domain.SlottedReservation, error) {
	return f.forDate, nil
}

type fakeSlotRepo struct {
	slot          *domain.Slot
	statusUpdates []domain.SlotStatus
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotNotFound
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) SetStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

type fakeMemberDirectory struct {
	members []domain.Member
}

func (f *fakeMemberDirectory) ListActiveWithSchedules(ctx context.Context) ([]domain.Member, error) {
	return f.members, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func availableSlot() *domain.Slot {
	return &domain.Slot{
		ID:              10,
		Date:            monday,
		StartTime:       "09:00",
		DurationMinutes: 60,
		Status:          domain.SlotStatusAvailable,
	}
}

func newTestUseCase(resRepo *fakeReservationRepo, slots *fakeSlotRepo, dir *fakeMemberDirectory, capacity int) *UseCase {
	return NewUseCase(resRepo, slots, dir, &fakeTxManager{}, capacity, nopLogger{})
}

func TestExecute_MemberBooking(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	slots := &fakeSlotRepo{slot: availableSlot()}
	uc := newTestUseCase(resRepo, slots, &fakeMemberDirectory{}, 15)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:   10,
		MemberID: ptr.Ptr(int64(5)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, int64(10), resp.SlotID)
	require.NotNil(t, resp.MemberID)
	assert.Equal(t, int64(5), *resp.MemberID)
	assert.Equal(t, "pending", resp.Attendance)
	assert.Equal(t, monday, resp.SlotDate)
	assert.Equal(t, "09:00", resp.StartTime.String())

	// Well below capacity, the slot stays available
	assert.Empty(t, slots.statusUpdates)
}

func TestExecute_WalkInBooking(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	slots := &fakeSlotRepo{slot: availableSlot()}
	uc := newTestUseCase(resRepo, slots, &fakeMemberDirectory{}, 15)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:      10,
		ClientName:  ptr.Ptr("Visitante"),
		ClientPhone: ptr.Ptr("+54 11 5555-0000"),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.MemberID)
	require.NotNil(t, resp.ClientName)
	assert.Equal(t, "Visitante", *resp.ClientName)
}

func TestExecute_SlotFullCountsVirtual(t *testing.T) {
	// Capacity 2: one manual walk-in plus one virtual member fill the slot.
	resRepo := &fakeReservationRepo{
		forSlot: []*domain.Reservation{
			{ID: 1, SlotID: 10, ClientName: ptr.Ptr("Visitante")},
		},
		forDate: []domain.SlottedReservation{
			{
				Reservation:   domain.Reservation{ID: 1, SlotID: 10, ClientName: ptr.Ptr("Visitante")},
				SlotStartTime: "09:00",
				SlotEndTime:   "10:00",
			},
		},
	}
	slots := &fakeSlotRepo{slot: availableSlot()}
	dir := &fakeMemberDirectory{
		members: []domain.Member{
			{
				ID:     1,
				Name:   "Ana",
				Status: domain.MemberStatusActive,
				RecurringSchedules: []domain.RecurringSchedule{
					{Weekday: "Monday", StartTime: "09:00", EndTime: "10:00"},
				},
			},
		},
	}
	uc := newTestUseCase(resRepo, slots, dir, 2)

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:   10,
		MemberID: ptr.Ptr(int64(5)),
	})
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Nil(t, resRepo.created)
}

func TestExecute_ManualBookingFreesVirtualSpot(t *testing.T) {
	// The scheduled member already booked manually elsewhere on the date, so
	// their virtual entry disappears and the spot opens up.
	resRepo := &fakeReservationRepo{
		forSlot: []*domain.Reservation{
			{ID: 1, SlotID: 10, ClientName: ptr.Ptr("Visitante")},
		},
		forDate: []domain.SlottedReservation{
			{
				Reservation:   domain.Reservation{ID: 1, SlotID: 10, ClientName: ptr.Ptr("Visitante")},
				SlotStartTime: "09:00",
				SlotEndTime:   "10:00",
			},
			{
				Reservation:   domain.Reservation{ID: 2, SlotID: 11, MemberID: ptr.Ptr(int64(1))},
				SlotStartTime: "18:00",
				SlotEndTime:   "19:00",
			},
		},
	}
	slots := &fakeSlotRepo{slot: availableSlot()}
	dir := &fakeMemberDirectory{
		members: []domain.Member{
			{
				ID:     1,
				Name:   "Ana",
				Status: domain.MemberStatusActive,
				RecurringSchedules: []domain.RecurringSchedule{
					{Weekday: "Monday", StartTime: "09:00", EndTime: "10:00"},
				},
			},
		},
	}
	uc := newTestUseCase(resRepo, slots, dir, 2)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:   10,
		MemberID: ptr.Ptr(int64(5)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}

func TestExecute_MarksSlotCompleteAtCapacity(t *testing.T) {
	resRepo := &fakeReservationRepo{
		forSlot: []*domain.Reservation{
			{ID: 1, SlotID: 10, ClientName: ptr.Ptr("Visitante")},
		},
	}
	slots := &fakeSlotRepo{slot: availableSlot()}
	uc := newTestUseCase(resRepo, slots, &fakeMemberDirectory{}, 2)

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:   10,
		MemberID: ptr.Ptr(int64(5)),
	})
	require.NoError(t, err)

	require.Len(t, slots.statusUpdates, 1)
	assert.Equal(t, domain.SlotStatusComplete, slots.statusUpdates[0])
}

func TestExecute_DuplicateBooking(t *testing.T) {
	resRepo := &fakeReservationRepo{
		existing: &domain.Reservation{ID: 50, SlotID: 10, MemberID: ptr.Ptr(int64(5))},
	}
	slots := &fakeSlotRepo{slot: availableSlot()}
	uc := newTestUseCase(resRepo, slots, &fakeMemberDirectory{}, 15)

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:   10,
		MemberID: ptr.Ptr(int64(5)),
	})
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSlotRepo{}, &fakeMemberDirectory{}, 15)

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:   99,
		MemberID: ptr.Ptr(int64(5)),
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_CancelledSlot(t *testing.T) {
	slot := availableSlot()
	slot.Status = domain.SlotStatusCancelled
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSlotRepo{slot: slot}, &fakeMemberDirectory{}, 15)

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:   10,
		MemberID: ptr.Ptr(int64(5)),
	})
	assert.ErrorIs(t, err, ErrSlotNotBookable)
}

func TestValidateRequest(t *testing.T) {
	longName := make([]byte, domain.MaxClientNameLength+1)
	for i := range longName {
		longName[i] = 'a'
	}

	tests := []struct {
		name    string
		req     *Request
		wantErr bool
	}{
		{"member booking", &Request{SlotID: 1, MemberID: ptr.Ptr(int64(5))}, false},
		{"walk-in booking", &Request{SlotID: 1, ClientName: ptr.Ptr("Visitante")}, false},
		{"neither member nor walk-in", &Request{SlotID: 1}, true},
		{"both member and walk-in", &Request{SlotID: 1, MemberID: ptr.Ptr(int64(5)), ClientName: ptr.Ptr("Visitante")}, true},
		{"blank client name", &Request{SlotID: 1, ClientName: ptr.Ptr("   ")}, true},
		{"non-positive slot id", &Request{SlotID: 0, MemberID: ptr.Ptr(int64(5))}, true},
		{"non-positive member id", &Request{SlotID: 1, MemberID: ptr.Ptr(int64(0))}, true},
		{"client name too long", &Request{SlotID: 1, ClientName: ptr.Ptr(string(longName))}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
