package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glamtime/GT-BookingService/internal/domain"
	"github.com/glamtime/GT-BookingService/pkg/psqlbuilder"
	"github.com/glamtime/GT-BookingService/pkg/txmanager"
)

// Repository репозиторий для работы с уведомлениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое уведомление (непрочитанное)
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns(
			"reservation_id",
			"message",
			"provider_id",
			"client_id",
			"read",
		).
		Values(
			n.ReservationID,
			n.Message,
			n.ProviderID,
			n.ClientID,
			false,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&n.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.Read = false
	n.CreatedAt = createdAt.Time
	n.UpdatedAt = updatedAt.Time

	return n, nil
}

// ListByRecipient получает уведомления получателя (сначала новые)
// role определяет колонку адресата, unreadOnly оставляет только непрочитанные
func (r *Repository) ListByRecipient(ctx context.Context, userID string, role domain.RecipientRole, unreadOnly bool) ([]*domain.Notification, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"reservation_id",
		"message",
		"provider_id",
		"client_id",
		"read",
		"created_at",
		"updated_at",
	).
		From("notifications").
		Where(recipientClause(userID, role)).
		OrderBy("created_at DESC", "id DESC")

	if unreadOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"read": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRecipient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRecipient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanNotifications(rows)
}

// CountUnread считает непрочитанные уведомления получателя
func (r *Repository) CountUnread(ctx context.Context, userID string, role domain.RecipientRole) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(id)").
		From("notifications").
		Where(recipientClause(userID, role)).
		Where(squirrel.Eq{"read": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUnread - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUnread - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// MarkRead помечает уведомление прочитанным
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead помечает все уведомления получателя прочитанными
func (r *Repository) MarkAllRead(ctx context.Context, userID string, role domain.RecipientRole) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(recipientClause(userID, role)).
		Where(squirrel.Eq{"read": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkAllRead - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkAllRead - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет уведомление
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("notifications").
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
		return ErrNotificationNotFound
	}

	return nil
}

// recipientClause условие выборки по адресату в зависимости от роли
func recipientClause(userID string, role domain.RecipientRole) squirrel.Eq {
	if role == domain.RoleProvider {
		return squirrel.Eq{"provider_id": userID}
	}
	return squirrel.Eq{"client_id": userID}
}

// scanNotifications сканирует результаты запроса в слайс уведомлений
func (r *Repository) scanNotifications(rows *sql.Rows) ([]*domain.Notification, error) {
	notifications := make([]*domain.Notification, 0)

	for rows.Next() {
		var n domain.Notification
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&n.ID,
			&n.ReservationID,
			&n.Message,
			&n.ProviderID,
			&n.ClientID,
			&n.Read,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanNotifications - scan row: %v", ErrScanRow, err)
		}

		n.CreatedAt = createdAt.Time
		n.UpdatedAt = updatedAt.Time

		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanNotifications - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}
