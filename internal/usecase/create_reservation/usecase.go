package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamtime/GT-BookingService/internal/domain"
	reservationRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/reservation"
	slotRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/slot"
	catalogClient "github.com/glamtime/GT-BookingService/internal/integrations/catalogservice"
	userClient "github.com/glamtime/GT-BookingService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	userClient      UserServiceClient
	catalogClient   CatalogServiceClient
	dispatcher      NotificationDispatcher
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepository ReservationRepository,
	slotRepository SlotRepository,
	userClient UserServiceClient,
	catalogClient CatalogServiceClient,
	dispatcher NotificationDispatcher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepository,
		slotRepo:        slotRepository,
		userClient:      userClient,
		catalogClient:   catalogClient,
		dispatcher:      dispatcher,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Использует сериализуемую транзакцию, чтобы на пару (слот, дата)
// не появилось двух активных бронирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: client=%s, slot=%d, service=%d, date=%s",
		req.ClientID, req.SlotID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента
	if _, err := uc.userClient.GetClient(ctx, req.ClientID); err != nil {
		if errors.Is(err, userClient.ErrClientNotFound) {
			uc.logger.Warn("CreateReservation: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateReservation: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Получаем слот - из него берем мастера-адресата уведомления
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateReservation: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateReservation: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 4. Проверяем существование услуги в каталоге
	if _, err := uc.catalogClient.GetService(ctx, req.ServiceID); err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 5. Проверка занятости и вставка - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		date := req.Date.Format(domain.DateFormat)

		// 5.1. Ищем активное бронирование на этот слот и дату (FOR UPDATE)
		_, err := uc.reservationRepo.GetActiveBySlotAndDate(txCtx, req.SlotID, date)
		if err == nil {
			uc.logger.Warn("CreateReservation: slot id=%d already reserved on %s", req.SlotID, date)
			return ErrSlotTaken
		}
		if !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Error("CreateReservation: failed to check slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to check slot availability: %v", ErrInternal, err)
		}

		// 5.2. Создаем бронирование в начальном состоянии pending
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ClientID:  req.ClientID,
			SlotID:    req.SlotID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			State:     domain.StatePending,
			Design:    req.Design,
			Size:      req.Size,
		})
		if err != nil {
			// Частичный уникальный индекс - страховка от гонки параллельных созданий
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: unique index rejected slot id=%d on %s", req.SlotID, date)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 6. Уведомляем мастера после фиксации транзакции (best-effort)
	message := fmt.Sprintf("Новое бронирование #%d на %s, слот %s-%s",
		result.ID, result.Date.Format(domain.DateFormat), slot.StartTime, slot.EndTime)
	uc.dispatcher.NotifyProvider(ctx, result.ID, message, slot.ProviderID)

	uc.logger.Info("CreateReservation: reservation id=%d created for client=%s", result.ID, req.ClientID)

	return toResponse(result), nil
}
