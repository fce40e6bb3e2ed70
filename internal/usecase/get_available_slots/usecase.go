package get_available_slots

import (
	"context"
	"fmt"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// UseCase use case для получения слотов мастера, свободных на указанную дату
type UseCase struct {
	slotRepo        SlotRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepository SlotRepository,
	reservationRepository ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepository,
		reservationRepo: reservationRepository,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Свободный слот - слот мастера без активного бронирования на эту дату;
// отмененные бронирования слот не занимают
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%s, date=%s",
		req.ProviderID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	var (
		slots []*domain.Slot
		taken []int64
	)

	// Оба чтения - в одной read-only транзакции, чтобы список слотов
	// и список занятых слотов были из одного снимка
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		// 1. Все слоты мастера, отсортированы по времени начала
		var err error
		slots, err = uc.slotRepo.ListByProvider(txCtx, req.ProviderID)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list slots for provider=%s: %v", req.ProviderID, err)
			return fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}

		// У мастера без слотов свободных слотов нет
		if len(slots) == 0 {
			return nil
		}

		// 2. Слоты, занятые активными бронированиями на эту дату
		taken, err = uc.reservationRepo.ListActiveSlotIDs(txCtx, req.ProviderID, req.Date.Format(domain.DateFormat))
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list reserved slots for provider=%s: %v", req.ProviderID, err)
			return fmt.Errorf("%w: failed to list reserved slots: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &Response{
		ProviderID: req.ProviderID,
		Date:       req.Date,
		Slots:      []Slot{},
	}

	if len(slots) == 0 {
		return resp, nil
	}

	takenSet := make(map[int64]struct{}, len(taken))
	for _, id := range taken {
		takenSet[id] = struct{}{}
	}

	// 3. Вычитаем занятые, сохраняя порядок
	for _, s := range slots {
		if _, ok := takenSet[s.ID]; ok {
			continue
		}
		resp.Slots = append(resp.Slots, fromDomainSlot(s))
	}

	uc.logger.Info("GetAvailableSlots: provider=%s has %d/%d free slots on %s",
		req.ProviderID, len(resp.Slots), len(slots), req.Date.Format(domain.DateFormat))

	return resp, nil
}
