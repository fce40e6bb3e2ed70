package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamtime/GT-BookingService/internal/domain"
	reservationRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/reservation"
	slotRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/slot"
)

// UseCase use case для переноса бронирования на другой слот и/или дату
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	dispatcher      NotificationDispatcher
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepository ReservationRepository,
	slotRepository SlotRepository,
	dispatcher NotificationDispatcher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepository,
		slotRepo:        slotRepository,
		dispatcher:      dispatcher,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case переноса бронирования.
// Перенос доступен только клиенту-владельцу и только из состояний
// pending и confirmed; состояние при переносе не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleReservation: reservation=%d, actor=%s, newSlot=%d, newDate=%s",
		req.ReservationID, req.ActorID, req.NewSlotID, req.NewDate.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleReservation: validation failed: %v", err)
		return nil, err
	}

	var (
		result   *domain.Reservation
		provider string
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("RescheduleReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("RescheduleReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. Переносить может только клиент-владелец
		if res.ClientID != req.ActorID {
			uc.logger.Warn("RescheduleReservation: actor=%s is not the owner of reservation id=%d",
				req.ActorID, res.ID)
			return ErrAccessDenied
		}

		// 3. Из терминальных состояний переноса нет
		if !res.CanBeRescheduled() {
			uc.logger.Warn("RescheduleReservation: reservation id=%d in state=%s cannot be rescheduled",
				res.ID, res.State)
			return ErrInvalidState
		}

		// 4. Целевой слот должен существовать
		slot, err := uc.slotRepo.GetByID(txCtx, req.NewSlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("RescheduleReservation: slot id=%d not found", req.NewSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("RescheduleReservation: failed to get slot id=%d: %v", req.NewSlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		provider = slot.ProviderID

		newDate := req.NewDate.Format(domain.DateFormat)

		// 5. Целевая пара (слот, дата) должна быть свободна.
		// Собственное бронирование конфликтом не считается: перенос
		// на тот же слот с той же датой - no-op, а не отказ
		existing, err := uc.reservationRepo.GetActiveBySlotAndDate(txCtx, req.NewSlotID, newDate)
		if err == nil && existing.ID != res.ID {
			uc.logger.Warn("RescheduleReservation: slot id=%d already reserved on %s", req.NewSlotID, newDate)
			return ErrSlotTaken
		}
		if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Error("RescheduleReservation: failed to check slot id=%d: %v", req.NewSlotID, err)
			return fmt.Errorf("%w: failed to check slot availability: %v", ErrInternal, err)
		}

		// 6. Переносим
		if err := uc.reservationRepo.Reschedule(txCtx, res.ID, req.NewSlotID, newDate); err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleReservation: unique index rejected slot id=%d on %s", req.NewSlotID, newDate)
				return ErrSlotTaken
			}
			uc.logger.Error("RescheduleReservation: failed to reschedule reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to reschedule reservation: %v", ErrInternal, err)
		}

		res.SlotID = req.NewSlotID
		res.Date = req.NewDate
		result = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 7. Уведомляем мастера целевого слота (best-effort)
	message := fmt.Sprintf("Бронирование #%d перенесено на %s",
		result.ID, result.Date.Format(domain.DateFormat))
	uc.dispatcher.NotifyProvider(ctx, result.ID, message, provider)

	uc.logger.Info("RescheduleReservation: reservation id=%d moved to slot=%d, date=%s",
		result.ID, result.SlotID, result.Date.Format(domain.DateFormat))

	return toResponse(result), nil
}
