package change_reservation_state

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamtime/GT-BookingService/internal/domain"
	reservationRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/reservation"
)

// actorRole роль инициатора перехода относительно бронирования
type actorRole int

const (
	roleClient actorRole = iota
	roleProvider
)

// UseCase use case для перевода бронирования по жизненному циклу:
// pending -> confirmed -> completed, отмена из pending/confirmed
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	dispatcher      NotificationDispatcher
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepository ReservationRepository,
	slotRepository SlotRepository,
	dispatcher NotificationDispatcher,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepository,
		slotRepo:        slotRepository,
		dispatcher:      dispatcher,
		logger:          logger,
	}
}

// Execute выполняет use case смены состояния бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChangeReservationState: reservation=%d, actor=%s, target=%s",
		req.ReservationID, req.ActorID, req.TargetState)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ChangeReservationState: validation failed: %v", err)
		return nil, err
	}

	target := domain.ReservationState(req.TargetState)

	// 1. Получаем бронирование
	res, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("ChangeReservationState: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("ChangeReservationState: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 2. Определяем роль инициатора и мастера слота
	slot, err := uc.slotRepo.GetByID(ctx, res.SlotID)
	if err != nil {
		uc.logger.Error("ChangeReservationState: failed to get slot id=%d for reservation id=%d: %v",
			res.SlotID, res.ID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	var role actorRole
	switch req.ActorID {
	case res.ClientID:
		role = roleClient
	case slot.ProviderID:
		role = roleProvider
	default:
		uc.logger.Warn("ChangeReservationState: actor=%s has no access to reservation id=%d",
			req.ActorID, res.ID)
		return nil, ErrAccessDenied
	}

	// 3. Из терминального состояния переходов нет
	if res.IsTerminal() {
		uc.logger.Warn("ChangeReservationState: reservation id=%d in terminal state=%s", res.ID, res.State)
		return nil, ErrInvalidState
	}

	// 4. pending - только стартовое состояние, в него вернуться нельзя
	if !domain.ValidTransitionTarget(target) {
		uc.logger.Warn("ChangeReservationState: state=%s is not a valid target", target)
		return nil, ErrInvalidState
	}

	if target == res.State {
		uc.logger.Warn("ChangeReservationState: reservation id=%d already in state=%s", res.ID, target)
		return nil, ErrInvalidState
	}

	// 5. Роль ограничивает допустимые переходы: клиент может только отменить
	if !roleAllows(role, target) {
		uc.logger.Warn("ChangeReservationState: role does not allow actor=%s to set state=%s", req.ActorID, target)
		return nil, ErrAccessDenied
	}

	// 6. Цена учитывается только при завершении и не может быть отрицательной.
	// nil сохраняет ранее установленное значение
	var price *float64
	if target == domain.StateCompleted && req.Price != nil {
		if *req.Price < 0 {
			uc.logger.Warn("ChangeReservationState: negative price %.2f for reservation id=%d", *req.Price, res.ID)
			return nil, ErrInvalidPrice
		}
		price = req.Price
	}

	// 7. Применяем переход
	if err := uc.reservationRepo.UpdateState(ctx, res.ID, target, price); err != nil {
		uc.logger.Error("ChangeReservationState: failed to update reservation id=%d: %v", res.ID, err)
		return nil, fmt.Errorf("%w: failed to update reservation state: %v", ErrInternal, err)
	}

	res.State = target
	if price != nil {
		res.Price = price
	}

	// 8. Уведомляем противоположную сторону (best-effort)
	uc.notify(ctx, role, res, slot.ProviderID)

	uc.logger.Info("ChangeReservationState: reservation id=%d moved to state=%s", res.ID, res.State)

	return toResponse(res), nil
}

// roleAllows проверяет, что роль инициатора допускает целевое состояние
func roleAllows(role actorRole, target domain.ReservationState) bool {
	targets := domain.ProviderTransitionTargets
	if role == roleClient {
		targets = domain.ClientTransitionTargets
	}

	for _, s := range targets {
		if s == target {
			return true
		}
	}
	return false
}

// notify отправляет уведомление стороне, не инициировавшей переход
func (uc *UseCase) notify(ctx context.Context, role actorRole, res *domain.Reservation, providerID string) {
	message := stateMessage(res)

	if role == roleClient {
		uc.dispatcher.NotifyProvider(ctx, res.ID, message, providerID)
		return
	}
	uc.dispatcher.NotifyClient(ctx, res.ID, message, res.ClientID)
}

// stateMessage формирует текст уведомления о переходе
func stateMessage(res *domain.Reservation) string {
	date := res.Date.Format(domain.DateFormat)

	switch res.State {
	case domain.StateConfirmed:
		return fmt.Sprintf("Бронирование #%d на %s подтверждено", res.ID, date)
	case domain.StateCompleted:
		if res.Price != nil {
			return fmt.Sprintf("Бронирование #%d на %s завершено, итоговая цена %.2f", res.ID, date, *res.Price)
		}
		return fmt.Sprintf("Бронирование #%d на %s завершено", res.ID, date)
	case domain.StateCancelled:
		return fmt.Sprintf("Бронирование #%d на %s отменено", res.ID, date)
	default:
		return fmt.Sprintf("Бронирование #%d на %s: состояние изменено на %s", res.ID, date, res.State)
	}
}
