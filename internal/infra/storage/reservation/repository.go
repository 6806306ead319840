package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
	"github.com/m04kA/GYM-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/GYM-ReservationService/pkg/txmanager"
)

// uniqueViolation код ошибки PostgreSQL при нарушении unique constraint
const uniqueViolation = "23505"

// Repository репозиторий для работы с резервациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую резервацию
// Если в контексте есть активная транзакция, использует её.
// Нарушение уникальности (slot_id, member_id) транслируется в ErrDuplicateReservation.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"slot_id",
			"member_id",
			"client_name",
			"client_phone",
			"client_email",
			"attended",
		).
		Values(
			res.SlotID,
			res.MemberID,
			res.ClientName,
			res.ClientPhone,
			res.ClientEmail,
			res.Attended,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateReservation
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает резервацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectReservation().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// FindByMemberAndSlot находит резервацию участника на слот
// Возвращает ErrReservationNotFound, если резервации нет.
func (r *Repository) FindByMemberAndSlot(ctx context.Context, memberID, slotID int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectReservation().
		Where(squirrel.Eq{"member_id": memberID, "slot_id": slotID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByMemberAndSlot - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByMemberAndSlot - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListForSlot получает все резервации слота
// Внутри транзакции блокирует строки через FOR UPDATE, чтобы параллельные
// бронирования того же слота не прошли проверку вместимости одновременно.
func (r *Repository) ListForSlot(ctx context.Context, slotID int64) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := selectReservation().
		Where(squirrel.Eq{"slot_id": slotID}).
		OrderBy("created_at ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListForSlot - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForSlot - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// CountForSlot подсчитывает количество резерваций слота
func (r *Repository) CountForSlot(ctx context.Context, slotID int64) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountForSlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountForSlot - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListByDate получает все резервации на дату вместе с временем их слотов
// Используется read-путями для построения объединенного представления дня.
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]domain.SlottedReservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.slot_id",
		"r.member_id",
		"r.client_name",
		"r.client_phone",
		"r.client_email",
		"r.attended",
		"r.created_at",
		"r.updated_at",
		"s.start_time",
		"s.duration_minutes",
	).
		From("reservations r").
		Join("slots s ON s.id = r.slot_id").
		Where(squirrel.Eq{"s.slot_date": date}).
		OrderBy("s.start_time ASC, r.created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]domain.SlottedReservation, 0)
	for rows.Next() {
		var res domain.SlottedReservation
		var createdAt, updatedAt sql.NullTime
		var durationMinutes int

		err := rows.Scan(
			&res.ID,
			&res.SlotID,
			&res.MemberID,
			&res.ClientName,
			&res.ClientPhone,
			&res.ClientEmail,
			&res.Attended,
			&createdAt,
			&updatedAt,
			&res.SlotStartTime,
			&durationMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		end, err := res.SlotStartTime.AddMinutes(durationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate - compute slot end: %v", ErrScanRow, err)
		}
		res.SlotEndTime = end

		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// UpdateAttendance обновляет флаг посещаемости резервации
func (r *Repository) UpdateAttendance(ctx context.Context, id int64, attended *bool) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("attended", attended).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateAttendance - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAttendance - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateAttendance - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет резервацию (используется при отмене)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func selectReservation() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"slot_id",
		"member_id",
		"client_name",
		"client_phone",
		"client_email",
		"attended",
		"created_at",
		"updated_at",
	).From("reservations")
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.SlotID,
		&res.MemberID,
		&res.ClientName,
		&res.ClientPhone,
		&res.ClientEmail,
		&res.Attended,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
