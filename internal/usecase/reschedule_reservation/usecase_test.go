package reschedule_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/GT-BookingService/internal/domain"
	reservationRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/reservation"
	slotRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/slot"
)

type mockReservationRepo struct {
	reservation *domain.Reservation
	getErr      error

	activeOnTarget *domain.Reservation

	rescheduled     bool
	rescheduledSlot int64
	rescheduledDate string
	rescheduleErr   error
}

func (m *mockReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	res := *m.reservation
	return &res, nil
}

func (m *mockReservationRepo) GetActiveBySlotAndDate(_ context.Context, _ int64, _ string) (*domain.Reservation, error) {
	if m.activeOnTarget == nil {
		return nil, reservationRepo.ErrReservationNotFound
	}
	res := *m.activeOnTarget
	return &res, nil
}

func (m *mockReservationRepo) Reschedule(_ context.Context, _ int64, slotID int64, date string) error {
	if m.rescheduleErr != nil {
		return m.rescheduleErr
	}
	m.rescheduled = true
	m.rescheduledSlot = slotID
	m.rescheduledDate = date
	return nil
}

type mockSlotRepo struct {
	slot   *domain.Slot
	getErr error
}

func (m *mockSlotRepo) GetByID(_ context.Context, _ int64) (*domain.Slot, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := *m.slot
	return &s, nil
}

type mockDispatcher struct {
	providerMessages []string
}

func (m *mockDispatcher) NotifyProvider(_ context.Context, _ int64, message string, _ string) {
	m.providerMessages = append(m.providerMessages, message)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(state domain.ReservationState) (*UseCase, *mockReservationRepo, *mockDispatcher) {
	repo := &mockReservationRepo{
		reservation: &domain.Reservation{
			ID:       1,
			SlotID:   10,
			ClientID: "client-1",
			Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			State:    state,
		},
	}
	slots := &mockSlotRepo{slot: &domain.Slot{ID: 20, ProviderID: "provider-1"}}
	dispatcher := &mockDispatcher{}

	return NewUseCase(repo, slots, dispatcher, fakeTxManager{}, nopLogger{}), repo, dispatcher
}

func validRequest() *Request {
	return &Request{
		ReservationID: 1,
		ActorID:       "client-1",
		NewSlotID:     20,
		NewDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	uc, repo, dispatcher := newFixture(domain.StateConfirmed)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, repo.rescheduled)
	assert.Equal(t, int64(20), repo.rescheduledSlot)
	assert.Equal(t, "2026-03-02", repo.rescheduledDate)

	// Состояние переносом не меняется
	assert.Equal(t, string(domain.StateConfirmed), resp.State)
	assert.Equal(t, int64(20), resp.SlotID)

	require.Len(t, dispatcher.providerMessages, 1)
	assert.Contains(t, dispatcher.providerMessages[0], "2026-03-02")
}

func TestExecute_OnlyOwnerMayReschedule(t *testing.T) {
	uc, repo, _ := newFixture(domain.StatePending)

	req := validRequest()
	req.ActorID = "provider-1"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.rescheduled)
}

func TestExecute_TerminalStatesNotReschedulable(t *testing.T) {
	for _, state := range []domain.ReservationState{domain.StateCompleted, domain.StateCancelled} {
		t.Run(string(state), func(t *testing.T) {
			uc, repo, _ := newFixture(state)

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrInvalidState)
			assert.False(t, repo.rescheduled)
		})
	}
}

func TestExecute_TargetSlotTaken(t *testing.T) {
	uc, repo, _ := newFixture(domain.StatePending)
	repo.activeOnTarget = &domain.Reservation{ID: 99, SlotID: 20, State: domain.StateConfirmed}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.False(t, repo.rescheduled)
}

func TestExecute_OwnReservationOnTargetIsNotConflict(t *testing.T) {
	// Перенос на тот же слот с той же датой: активное бронирование на цели - свое же
	uc, repo, _ := newFixture(domain.StatePending)
	repo.activeOnTarget = repo.reservation

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, repo.rescheduled)
	assert.Equal(t, int64(20), resp.SlotID)
}

func TestExecute_TargetSlotNotFound(t *testing.T) {
	uc, repo, _ := newFixture(domain.StatePending)
	uc.slotRepo = &mockSlotRepo{getErr: slotRepo.ErrSlotNotFound}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.False(t, repo.rescheduled)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	uc, repo, _ := newFixture(domain.StatePending)
	repo.getErr = reservationRepo.ErrReservationNotFound

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	uc, repo, _ := newFixture(domain.StatePending)
	repo.rescheduleErr = reservationRepo.ErrSlotTaken

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}
