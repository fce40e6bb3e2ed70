package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamtime/GT-BookingService/internal/domain"
	slotRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/slot"
	userClient "github.com/glamtime/GT-BookingService/internal/integrations/userservice"
	"github.com/glamtime/GT-BookingService/internal/service/slots/models"
	"github.com/glamtime/GT-BookingService/pkg/ptr"
	"github.com/glamtime/GT-BookingService/pkg/types"
)

// Service сервис для управления слотами поставщика
// Главный инвариант: интервалы [start, end) слотов одного поставщика
// никогда не пересекаются (границы "впритык" пересечением не считаются)
type Service struct {
	slotRepo        SlotRepository
	reservationRepo ReservationRepository
	userClient      UserServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	reservationRepo ReservationRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		userClient:      userClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create создает новый слот поставщика
// Проверка пересечения и вставка выполняются в сериализуемой транзакции,
// чтобы параллельные запросы не проскочили check-then-act
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: provider=%s, start=%s, end=%s", req.ProviderID, req.StartTime, req.EndTime)

	if err := s.validateRange(req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("Create: invalid time range start=%s end=%s", req.StartTime, req.EndTime)
		return nil, err
	}

	// Проверяем существование поставщика в справочнике
	if err := s.checkProviderExists(ctx, req.ProviderID); err != nil {
		return nil, err
	}

	var created *domain.Slot

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Проверяем пересечение с существующими слотами поставщика
		conflict, err := s.slotRepo.FindOverlapping(txCtx, req.ProviderID, req.StartTime, req.EndTime, nil)
		if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Error("Create: overlap check failed for provider=%s: %v", req.ProviderID, err)
			return fmt.Errorf("%w: Create - overlap check: %v", ErrInternal, err)
		}
		if conflict != nil {
			s.logger.Warn("Create: slot %s-%s overlaps with slot id=%d (%s-%s)",
				req.StartTime, req.EndTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotOverlap
		}

		created, err = s.slotRepo.Create(txCtx, &domain.Slot{
			ProviderID: req.ProviderID,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
		})
		if err != nil {
			s.logger.Error("Create: failed to create slot for provider=%s: %v", req.ProviderID, err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: successfully created slot id=%d for provider=%s", created.ID, created.ProviderID)
	return models.FromDomainSlot(created), nil
}

// Update обновляет границы слота
// Слот исключается из проверки пересечения по собственному ID
func (s *Service) Update(ctx context.Context, slotID int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Update: slot id=%d, provider=%s, start=%s, end=%s", slotID, req.ProviderID, req.StartTime, req.EndTime)

	if err := s.validateRange(req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("Update: invalid time range start=%s end=%s", req.StartTime, req.EndTime)
		return nil, err
	}

	var updated *domain.Slot

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.slotRepo.GetByID(txCtx, slotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				s.logger.Warn("Update: slot id=%d not found", slotID)
				return ErrSlotNotFound
			}
			s.logger.Error("Update: repository error for slot id=%d: %v", slotID, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		// Слот можно менять только его владельцу
		if existing.ProviderID != req.ProviderID {
			s.logger.Warn("Update: provider=%s is not the owner of slot id=%d", req.ProviderID, slotID)
			return ErrAccessDenied
		}

		conflict, err := s.slotRepo.FindOverlapping(txCtx, req.ProviderID, req.StartTime, req.EndTime, ptr.Ptr(slotID))
		if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Error("Update: overlap check failed for slot id=%d: %v", slotID, err)
			return fmt.Errorf("%w: Update - overlap check: %v", ErrInternal, err)
		}
		if conflict != nil {
			s.logger.Warn("Update: slot %s-%s overlaps with slot id=%d (%s-%s)",
				req.StartTime, req.EndTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotOverlap
		}

		existing.StartTime = req.StartTime
		existing.EndTime = req.EndTime

		updated, err = s.slotRepo.Update(txCtx, existing)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			s.logger.Error("Update: failed to update slot id=%d: %v", slotID, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated slot id=%d", slotID)
	return models.FromDomainSlot(updated), nil
}

// Delete удаляет слот поставщика
// Слот с активными бронированиями удалить нельзя - сначала их нужно отменить
func (s *Service) Delete(ctx context.Context, slotID int64, providerID string) error {
	s.logger.Info("Delete: slot id=%d by provider=%s", slotID, providerID)

	existing, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if existing.ProviderID != providerID {
		s.logger.Warn("Delete: provider=%s is not the owner of slot id=%d", providerID, slotID)
		return ErrAccessDenied
	}

	activeCount, err := s.reservationRepo.CountActiveBySlot(ctx, slotID)
	if err != nil {
		s.logger.Error("Delete: failed to count reservations for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - count reservations: %v", ErrInternal, err)
	}
	if activeCount > 0 {
		s.logger.Warn("Delete: slot id=%d has %d active reservations", slotID, activeCount)
		return ErrSlotHasReservations
	}

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: failed to delete slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted slot id=%d", slotID)
	return nil
}

// ListByProvider получает все слоты поставщика
// Сортировка по времени начала по возрастанию (стабильная: при равенстве - по ID)
func (s *Service) ListByProvider(ctx context.Context, providerID string) (*models.SlotListResponse, error) {
	s.logger.Info("ListByProvider: provider=%s", providerID)

	slots, err := s.slotRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByProvider: fetched %d slots for provider=%s", len(slots), providerID)
	return models.FromDomainSlotList(slots), nil
}

// validateRange проверяет инвариант start < end
func (s *Service) validateRange(start, end types.TimeString) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(end) {
		return ErrInvalidTimeRange
	}
	return nil
}

// checkProviderExists проверяет существование поставщика через UserService
func (s *Service) checkProviderExists(ctx context.Context, providerID string) error {
	if _, err := s.userClient.GetProvider(ctx, providerID); err != nil {
		if errors.Is(err, userClient.ErrProviderNotFound) {
			s.logger.Warn("checkProviderExists: provider=%s not found", providerID)
			return ErrProviderNotFound
		}
		s.logger.Error("checkProviderExists: failed to get provider=%s: %v", providerID, err)
		return fmt.Errorf("%w: checkProviderExists - failed to get provider: %v", ErrInternal, err)
	}
	return nil
}
