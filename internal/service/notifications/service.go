package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamtime/GT-BookingService/internal/domain"
	notificationRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/notification"
	"github.com/glamtime/GT-BookingService/internal/service/notifications/models"
)

// Service сервис ленты уведомлений
type Service struct {
	repo   NotificationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(repo NotificationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List получает уведомления получателя (сначала новые)
// unreadOnly оставляет только непрочитанные
func (s *Service) List(ctx context.Context, userID string, role string, unreadOnly bool) (*models.NotificationListResponse, error) {
	s.logger.Info("List: user=%s, role=%s, unreadOnly=%t", userID, role, unreadOnly)

	recipientRole, err := parseRole(role)
	if err != nil {
		s.logger.Warn("List: invalid role=%s for user=%s", role, userID)
		return nil, err
	}

	notifications, err := s.repo.ListByRecipient(ctx, userID, recipientRole, unreadOnly)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d notifications for user=%s", len(notifications), userID)
	return models.FromDomainNotificationList(notifications), nil
}

// CountUnread считает непрочитанные уведомления получателя
func (s *Service) CountUnread(ctx context.Context, userID string, role string) (*models.UnreadCountResponse, error) {
	s.logger.Info("CountUnread: user=%s, role=%s", userID, role)

	recipientRole, err := parseRole(role)
	if err != nil {
		s.logger.Warn("CountUnread: invalid role=%s for user=%s", role, userID)
		return nil, err
	}

	count, err := s.repo.CountUnread(ctx, userID, recipientRole)
	if err != nil {
		s.logger.Error("CountUnread: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: CountUnread - repository error: %v", ErrInternal, err)
	}

	return &models.UnreadCountResponse{Count: count}, nil
}

// MarkRead помечает уведомление прочитанным
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	s.logger.Info("MarkRead: notification id=%d", id)

	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found", id)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// MarkAllRead помечает все уведомления получателя прочитанными
func (s *Service) MarkAllRead(ctx context.Context, userID string, role string) error {
	s.logger.Info("MarkAllRead: user=%s, role=%s", userID, role)

	recipientRole, err := parseRole(role)
	if err != nil {
		s.logger.Warn("MarkAllRead: invalid role=%s for user=%s", role, userID)
		return err
	}

	if err := s.repo.MarkAllRead(ctx, userID, recipientRole); err != nil {
		s.logger.Error("MarkAllRead: repository error for user=%s: %v", userID, err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Delete удаляет уведомление
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: notification id=%d", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("Delete: notification id=%d not found", id)
			return ErrNotificationNotFound
		}
		s.logger.Error("Delete: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// parseRole валидирует роль получателя
func parseRole(role string) (domain.RecipientRole, error) {
	switch domain.RecipientRole(role) {
	case domain.RoleClient:
		return domain.RoleClient, nil
	case domain.RoleProvider:
		return domain.RoleProvider, nil
	default:
		return "", ErrInvalidRole
	}
}
