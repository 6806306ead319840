package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/GYM-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/GYM-ReservationService/pkg/ptr"
)

type fakeReservationRepo struct {
	res       *domain.Reservation
	remaining int
	deleted   []int64
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if f.res == nil || f.res.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.res, nil
}

func (f *fakeReservationRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeReservationRepo) CountForSlot(ctx context.Context, slotID int64) (int, error) {
	return f.remaining, nil
}

type fakeSlotRepo struct {
	slot          *domain.Slot
	statusUpdates []domain.SlotStatus
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return f.slot, nil
}

func (f *fakeSlotRepo) SetStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testSlot(status domain.SlotStatus) *domain.Slot {
	return &domain.Slot{
		ID:              10,
		Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		DurationMinutes: 60,
		Status:          status,
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeReservationRepo{
		res: &domain.Reservation{ID: 1, SlotID: 10, MemberID: ptr.Ptr(int64(5))},
	}
	svc := NewService(repo, &fakeSlotRepo{}, &fakeTxManager{}, 15, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(10), resp.SlotID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, &fakeSlotRepo{}, &fakeTxManager{}, 15, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_RestoresCompleteSlot(t *testing.T) {
	repo := &fakeReservationRepo{
		res:       &domain.Reservation{ID: 1, SlotID: 10, MemberID: ptr.Ptr(int64(5))},
		remaining: 14,
	}
	slots := &fakeSlotRepo{slot: testSlot(domain.SlotStatusComplete)}
	svc := NewService(repo, slots, &fakeTxManager{}, 15, nopLogger{})

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, repo.deleted)
	require.Len(t, slots.statusUpdates, 1)
	assert.Equal(t, domain.SlotStatusAvailable, slots.statusUpdates[0])
}

func TestCancel_LeavesAvailableSlotAlone(t *testing.T) {
	repo := &fakeReservationRepo{
		res:       &domain.Reservation{ID: 1, SlotID: 10, MemberID: ptr.Ptr(int64(5))},
		remaining: 3,
	}
	slots := &fakeSlotRepo{slot: testSlot(domain.SlotStatusAvailable)}
	svc := NewService(repo, slots, &fakeTxManager{}, 15, nopLogger{})

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, slots.statusUpdates)
}

func TestCancel_DoesNotReviveCancelledSlot(t *testing.T) {
	repo := &fakeReservationRepo{
		res:       &domain.Reservation{ID: 1, SlotID: 10, MemberID: ptr.Ptr(int64(5))},
		remaining: 0,
	}
	slots := &fakeSlotRepo{slot: testSlot(domain.SlotStatusCancelled)}
	svc := NewService(repo, slots, &fakeTxManager{}, 15, nopLogger{})

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, slots.statusUpdates)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, &fakeSlotRepo{}, &fakeTxManager{}, 15, nopLogger{})

	err := svc.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
