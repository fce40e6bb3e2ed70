package get_available_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

// UseCase use case для поиска дат, на которые у мастера есть свободные слоты.
// Дата считается доступной по счетчику: активных бронирований меньше,
// чем слотов у мастера. Это не учитывает, какие именно слоты заняты,
// поэтому результат - оценка сверху для календаря; точный список
// дает выборка свободных слотов на конкретную дату
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

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: provider=%s, range=%s..%s",
		req.ProviderID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		ProviderID: req.ProviderID,
		Dates:      []time.Time{},
	}

	var (
		totalSlots int
		counts     map[string]int
	)

	// Емкость и счетчики читаем в одной read-only транзакции - из одного снимка
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		// 1. Общее число слотов мастера - емкость одного дня
		slots, err := uc.slotRepo.ListByProvider(txCtx, req.ProviderID)
		if err != nil {
			uc.logger.Error("GetAvailableDates: failed to list slots for provider=%s: %v", req.ProviderID, err)
			return fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}

		totalSlots = len(slots)
		if totalSlots == 0 {
			return nil
		}

		// 2. Счетчики активных бронирований по датам диапазона одним запросом
		counts, err = uc.reservationRepo.CountActiveByDateRange(
			txCtx,
			req.ProviderID,
			req.StartDate.Format(domain.DateFormat),
			req.EndDate.Format(domain.DateFormat),
		)
		if err != nil {
			uc.logger.Error("GetAvailableDates: failed to count reservations for provider=%s: %v", req.ProviderID, err)
			return fmt.Errorf("%w: failed to count reservations: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if totalSlots == 0 {
		return resp, nil
	}

	// 3. Обходим диапазон по дням, границы включительно
	for d := dateOnly(req.StartDate); !d.After(dateOnly(req.EndDate)); d = d.AddDate(0, 0, 1) {
		if counts[d.Format(domain.DateFormat)] < totalSlots {
			resp.Dates = append(resp.Dates, d)
		}
	}

	uc.logger.Info("GetAvailableDates: provider=%s has %d available dates in range", req.ProviderID, len(resp.Dates))

	return resp, nil
}

// dateOnly обнуляет время, оставляя календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
