package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamtime/GT-BookingService/internal/domain"
	reservationRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/reservation"
	slotRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/slot"
	"github.com/glamtime/GT-BookingService/internal/service/reservations/models"
)

// Service сервис для чтения и административного удаления бронирований
type Service struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	dispatcher      NotificationDispatcher
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	dispatcher NotificationDispatcher,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		dispatcher:      dispatcher,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Доступно владельцу-клиенту и поставщику, которому принадлежит слот
func (s *Service) GetByID(ctx context.Context, id int64, actorID string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for actor=%s", id, actorID)

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if reservation.ClientID != actorID {
		slot, err := s.getSlot(ctx, reservation.SlotID)
		if err != nil {
			return nil, err
		}
		if slot.ProviderID != actorID {
			s.logger.Warn("GetByID: access denied for actor=%s to reservation id=%d", actorID, id)
			return nil, ErrAccessDenied
		}
	}

	return models.FromDomainReservation(reservation), nil
}

// ListByClient получает историю бронирований клиента (сначала новые по дате)
func (s *Service) ListByClient(ctx context.Context, clientID string) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByClient: fetching reservations for client=%s", clientID)

	reservations, err := s.reservationRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListByClient: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByClient: fetched %d reservations for client=%s", len(reservations), clientID)
	return models.FromDomainReservationList(reservations), nil
}

// ListByProvider получает бронирования на слоты поставщика
// Опциональные фильтры: конкретная дата (в т.ч. "сегодня") и состояние
func (s *Service) ListByProvider(ctx context.Context, req *models.ListProviderReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByProvider: provider=%s, date=%v, state=%v", req.ProviderID, req.Date, req.State)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByProvider: invalid filter for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: invalid state filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListByProvider(ctx, filter)
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByProvider: fetched %d reservations for provider=%s", len(reservations), req.ProviderID)
	return models.FromDomainReservationList(reservations), nil
}

// Delete полностью удаляет бронирование (административный путь поставщика)
// Порядок строгий: сначала собираем данные для уведомления, затем удаляем,
// затем уведомляем - чтобы не ссылаться на уже удаленную запись
func (s *Service) Delete(ctx context.Context, id int64, providerID string) error {
	s.logger.Info("Delete: reservation id=%d by provider=%s", id, providerID)

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	slot, err := s.getSlot(ctx, reservation.SlotID)
	if err != nil {
		return err
	}

	if slot.ProviderID != providerID {
		s.logger.Warn("Delete: provider=%s does not own slot of reservation id=%d", providerID, id)
		return ErrAccessDenied
	}

	message := fmt.Sprintf("Бронирование #%d на %s удалено",
		reservation.ID, reservation.Date.Format(domain.DateFormat))

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.dispatcher.NotifyProvider(ctx, reservation.ID, message, slot.ProviderID)

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// getReservation получает бронирование с маппингом ошибки на сервисную
func (s *Service) getReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return reservation, nil
}

// getSlot получает слот бронирования
// Отсутствие слота у существующего бронирования - нарушение ссылочной целостности
func (s *Service) getSlot(ctx context.Context, slotID int64) (*domain.Slot, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Error("slot id=%d referenced by reservation does not exist", slotID)
			return nil, fmt.Errorf("%w: dangling slot reference id=%d", ErrInternal, slotID)
		}
		s.logger.Error("repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return slot, nil
}
