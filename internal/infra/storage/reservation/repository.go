package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/glamtime/GT-BookingService/internal/domain"
	"github.com/glamtime/GT-BookingService/pkg/psqlbuilder"
	"github.com/glamtime/GT-BookingService/pkg/txmanager"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Частичный уникальный индекс (slot_id, date) WHERE state <> 'cancelled'
// страхует от гонки check-then-act: при срабатывании возвращается ErrSlotTaken
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"slot_id",
			"client_id",
			"service_id",
			"date",
			"state",
			"price",
			"design",
			"size",
		).
		Values(
			res.SlotID,
			res.ClientID,
			res.ServiceID,
			res.Date,
			res.State,
			res.Price,
			res.Design,
			res.Size,
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
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	res, err := scanReservation(row.Scan)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetActiveBySlotAndDate получает активное (не отмененное) бронирование
// для пары (слот, дата). Возвращает ErrReservationNotFound, если слот свободен
func (r *Repository) GetActiveBySlotAndDate(ctx context.Context, slotID int64, date string) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := selectReservations().
		Where(squirrel.Eq{"slot_id": slotID}).
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.NotEq{"state": domain.StateCancelled}).
		Limit(1)

	// Внутри транзакции блокируем найденную строку до коммита
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlotAndDate - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	res, err := scanReservation(row.Scan)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlotAndDate - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListByClient получает бронирования клиента (сначала новые по дате)
func (r *Repository) ListByClient(ctx context.Context, clientID string) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("date DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListByProvider получает бронирования на слоты поставщика с гибкой фильтрацией
// (по конкретной дате и/или состоянию)
func (r *Repository) ListByProvider(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"r.id",
		"r.slot_id",
		"r.client_id",
		"r.service_id",
		"r.date",
		"r.state",
		"r.price",
		"r.design",
		"r.size",
		"r.created_at",
		"r.updated_at",
	).
		From("reservations r").
		Join("slots s ON s.id = r.slot_id").
		Where(squirrel.Eq{"s.provider_id": filter.ProviderID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.date": *filter.Date})
	}
	if filter.State != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.state": *filter.State})
	}

	// Для конкретной даты упорядочиваем по времени слота, иначе - сначала новые
	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("s.start_time ASC", "r.id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("r.date DESC", "r.id DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListActiveSlotIDs получает ID слотов поставщика, занятых активными
// бронированиями на указанную дату
func (r *Repository) ListActiveSlotIDs(ctx context.Context, providerID string, date string) ([]int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("r.slot_id").
		From("reservations r").
		Join("slots s ON s.id = r.slot_id").
		Where(squirrel.Eq{"s.provider_id": providerID}).
		Where(squirrel.Eq{"r.date": date}).
		Where(squirrel.NotEq{"r.state": domain.StateCancelled}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slotIDs := make([]int64, 0)
	for rows.Next() {
		var slotID int64
		if err := rows.Scan(&slotID); err != nil {
			return nil, fmt.Errorf("%w: ListActiveSlotIDs - scan slot_id: %v", ErrScanRow, err)
		}
		slotIDs = append(slotIDs, slotID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - rows error: %v", ErrScanRow, err)
	}

	return slotIDs, nil
}

// CountActiveByDateRange считает активные бронирования на слоты поставщика,
// сгруппированные по дате, в диапазоне [startDate, endDate] включительно
// Ключи результата - даты в формате YYYY-MM-DD
func (r *Repository) CountActiveByDateRange(ctx context.Context, providerID string, startDate, endDate string) (map[string]int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"to_char(r.date, 'YYYY-MM-DD') AS date",
		"COUNT(r.id) AS cnt",
	).
		From("reservations r").
		Join("slots s ON s.id = r.slot_id").
		Where(squirrel.Eq{"s.provider_id": providerID}).
		Where(squirrel.GtOrEq{"r.date": startDate}).
		Where(squirrel.LtOrEq{"r.date": endDate}).
		Where(squirrel.NotEq{"r.state": domain.StateCancelled}).
		GroupBy("r.date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var cnt int
		if err := rows.Scan(&date, &cnt); err != nil {
			return nil, fmt.Errorf("%w: CountActiveByDateRange - scan row: %v", ErrScanRow, err)
		}
		counts[date] = cnt
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountActiveByDateRange - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// CountActiveBySlot считает активные бронирования, ссылающиеся на слот
// Используется как защита от удаления слота с живыми бронированиями
func (r *Repository) CountActiveBySlot(ctx context.Context, slotID int64) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(id)").
		From("reservations").
		Where(squirrel.Eq{"slot_id": slotID}).
		Where(squirrel.NotEq{"state": domain.StateCancelled}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySlot - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateState обновляет состояние бронирования
// Если price не nil, цена записывается вместе с состоянием (завершение с ценой)
func (r *Repository) UpdateState(ctx context.Context, id int64, state domain.ReservationState, price *float64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("state", state).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if price != nil {
		updateBuilder = updateBuilder.Set("price", *price)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Reschedule переносит бронирование на другой слот и/или дату
func (r *Repository) Reschedule(ctx context.Context, id int64, slotID int64, date string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("slot_id", slotID).
		Set("date", date).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление, административный путь)
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

// selectReservations базовый SELECT по колонкам бронирования
func selectReservations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"slot_id",
		"client_id",
		"service_id",
		"date",
		"state",
		"price",
		"design",
		"size",
		"created_at",
		"updated_at",
	).From("reservations")
}

// scanReservation сканирует одну строку в бронирование
func scanReservation(scan func(dest ...interface{}) error) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&res.ID,
		&res.SlotID,
		&res.ClientID,
		&res.ServiceID,
		&res.Date,
		&res.State,
		&res.Price,
		&res.Design,
		&res.Size,
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

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
