package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
	"github.com/m04kA/GYM-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/GYM-ReservationService/pkg/txmanager"
)

// Repository репозиторий для работы со слотами занятий
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectSlot().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// ListByDate получает все слоты на дату, отсортированные по времени начала
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectSlot().
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// SetStatus обновляет статус слота
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func selectSlot() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"slot_date",
		"start_time",
		"duration_minutes",
		"status",
		"created_at",
		"updated_at",
	).From("slots")
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.Date,
		&slot.StartTime,
		&slot.DurationMinutes,
		&slot.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}
