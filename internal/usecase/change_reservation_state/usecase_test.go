package change_reservation_state

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/GT-BookingService/internal/domain"
	reservationRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/reservation"
	"github.com/glamtime/GT-BookingService/pkg/ptr"
)

type mockReservationRepo struct {
	reservation *domain.Reservation
	getErr      error

	updatedState domain.ReservationState
	updatedPrice *float64
	updateCalled bool
	updateErr    error
}

func (m *mockReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	res := *m.reservation
	return &res, nil
}

func (m *mockReservationRepo) UpdateState(_ context.Context, _ int64, state domain.ReservationState, price *float64) error {
	m.updateCalled = true
	m.updatedState = state
	m.updatedPrice = price
	return m.updateErr
}

type mockSlotRepo struct {
	slot *domain.Slot
}

func (m *mockSlotRepo) GetByID(_ context.Context, _ int64) (*domain.Slot, error) {
	s := *m.slot
	return &s, nil
}

type mockDispatcher struct {
	providerMessages []string
	clientMessages   []string
}

func (m *mockDispatcher) NotifyProvider(_ context.Context, _ int64, message string, _ string) {
	m.providerMessages = append(m.providerMessages, message)
}

func (m *mockDispatcher) NotifyClient(_ context.Context, _ int64, message string, _ string) {
	m.clientMessages = append(m.clientMessages, message)
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
	slots := &mockSlotRepo{slot: &domain.Slot{ID: 10, ProviderID: "provider-1"}}
	dispatcher := &mockDispatcher{}

	return NewUseCase(repo, slots, dispatcher, nopLogger{}), repo, dispatcher
}

func TestExecute_ProviderConfirms(t *testing.T) {
	uc, repo, dispatcher := newFixture(domain.StatePending)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		ActorID:       "provider-1",
		TargetState:   "confirmed",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StateConfirmed), resp.State)
	assert.Equal(t, domain.StateConfirmed, repo.updatedState)

	// Уведомление уходит клиенту, не мастеру
	assert.Len(t, dispatcher.clientMessages, 1)
	assert.Empty(t, dispatcher.providerMessages)
}

func TestExecute_ClientCancels(t *testing.T) {
	uc, repo, dispatcher := newFixture(domain.StateConfirmed)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		ActorID:       "client-1",
		TargetState:   "cancelled",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StateCancelled), resp.State)
	assert.Equal(t, domain.StateCancelled, repo.updatedState)

	// Уведомление уходит мастеру
	assert.Len(t, dispatcher.providerMessages, 1)
	assert.Empty(t, dispatcher.clientMessages)
}

func TestExecute_ClientMayOnlyCancel(t *testing.T) {
	for _, target := range []string{"confirmed", "completed"} {
		t.Run(target, func(t *testing.T) {
			uc, repo, _ := newFixture(domain.StatePending)

			_, err := uc.Execute(context.Background(), &Request{
				ReservationID: 1,
				ActorID:       "client-1",
				TargetState:   target,
			})
			assert.ErrorIs(t, err, ErrAccessDenied)
			assert.False(t, repo.updateCalled)
		})
	}
}

func TestExecute_StrangerDenied(t *testing.T) {
	uc, repo, _ := newFixture(domain.StatePending)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		ActorID:       "someone-else",
		TargetState:   "cancelled",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.updateCalled)
}

func TestExecute_TerminalStatesFrozen(t *testing.T) {
	for _, state := range []domain.ReservationState{domain.StateCompleted, domain.StateCancelled} {
		t.Run(string(state), func(t *testing.T) {
			uc, repo, _ := newFixture(state)

			_, err := uc.Execute(context.Background(), &Request{
				ReservationID: 1,
				ActorID:       "provider-1",
				TargetState:   "confirmed",
			})
			assert.ErrorIs(t, err, ErrInvalidState)
			assert.False(t, repo.updateCalled)
		})
	}
}

func TestExecute_PendingNotATarget(t *testing.T) {
	uc, repo, _ := newFixture(domain.StateConfirmed)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		ActorID:       "provider-1",
		TargetState:   "pending",
	})
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.False(t, repo.updateCalled)
}

func TestExecute_CompleteWithPrice(t *testing.T) {
	uc, repo, dispatcher := newFixture(domain.StateConfirmed)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		ActorID:       "provider-1",
		TargetState:   "completed",
		Price:         ptr.Ptr(1500.0),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StateCompleted), resp.State)
	require.NotNil(t, repo.updatedPrice)
	assert.Equal(t, 1500.0, *repo.updatedPrice)
	assert.Contains(t, dispatcher.clientMessages[0], "1500.00")
}

func TestExecute_NegativePriceRejected(t *testing.T) {
	uc, repo, _ := newFixture(domain.StateConfirmed)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		ActorID:       "provider-1",
		TargetState:   "completed",
		Price:         ptr.Ptr(-1.0),
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	// Состояние не изменилось
	assert.False(t, repo.updateCalled)
}

func TestExecute_NilPricePreservesPrevious(t *testing.T) {
	uc, repo, _ := newFixture(domain.StateConfirmed)
	uc.reservationRepo = repo
	repo.reservation.Price = ptr.Ptr(900.0)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		ActorID:       "provider-1",
		TargetState:   "completed",
	})
	require.NoError(t, err)

	// В репозиторий уходит nil - ранее установленная цена не затирается
	assert.Nil(t, repo.updatedPrice)
	require.NotNil(t, resp.Price)
	assert.Equal(t, 900.0, *resp.Price)
}

func TestExecute_PriceIgnoredOutsideCompletion(t *testing.T) {
	uc, repo, _ := newFixture(domain.StatePending)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		ActorID:       "provider-1",
		TargetState:   "confirmed",
		Price:         ptr.Ptr(500.0),
	})
	require.NoError(t, err)
	assert.Nil(t, repo.updatedPrice)
}

func TestExecute_NotFound(t *testing.T) {
	uc, repo, _ := newFixture(domain.StatePending)
	repo.getErr = reservationRepo.ErrReservationNotFound

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		ActorID:       "provider-1",
		TargetState:   "confirmed",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
