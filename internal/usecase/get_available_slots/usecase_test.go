package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

type mockSlotRepo struct {
	slots []*domain.Slot
	err   error
}

func (m *mockSlotRepo) ListByProvider(_ context.Context, _ string) ([]*domain.Slot, error) {
	return m.slots, m.err
}

type mockReservationRepo struct {
	takenSlotIDs []int64
	err          error
}

func (m *mockReservationRepo) ListActiveSlotIDs(_ context.Context, _ string, _ string) ([]int64, error) {
	return m.takenSlotIDs, m.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRequest() *Request {
	return &Request{
		ProviderID: "provider-1",
		Date:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func threeSlots() []*domain.Slot {
	return []*domain.Slot{
		{ID: 1, ProviderID: "provider-1", StartTime: "09:00", EndTime: "10:00"},
		{ID: 2, ProviderID: "provider-1", StartTime: "10:00", EndTime: "11:00"},
		{ID: 3, ProviderID: "provider-1", StartTime: "11:00", EndTime: "12:00"},
	}
}

func TestExecute_ExcludesReservedSlots(t *testing.T) {
	uc := NewUseCase(
		&mockSlotRepo{slots: threeSlots()},
		&mockReservationRepo{takenSlotIDs: []int64{2}},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, int64(1), resp.Slots[0].ID)
	assert.Equal(t, int64(3), resp.Slots[1].ID)
}

func TestExecute_AllFreeWhenNothingReserved(t *testing.T) {
	uc := NewUseCase(
		&mockSlotRepo{slots: threeSlots()},
		&mockReservationRepo{},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	// Порядок по возрастанию времени начала сохраняется
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "11:00", resp.Slots[2].StartTime.String())
}

func TestExecute_AllReserved(t *testing.T) {
	uc := NewUseCase(
		&mockSlotRepo{slots: threeSlots()},
		&mockReservationRepo{takenSlotIDs: []int64{1, 2, 3}},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ProviderWithoutSlots(t *testing.T) {
	reservations := &mockReservationRepo{err: assert.AnError}
	uc := NewUseCase(&mockSlotRepo{}, reservations, fakeTxManager{}, nopLogger{})

	// До выборки бронирований дело не доходит
	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockSlotRepo{}, &mockReservationRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: "provider-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

type recordingTxManager struct {
	readOnlyCalls int
}

func (m *recordingTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.readOnlyCalls++
	return fn(ctx)
}

func TestExecute_ReadsRunInReadOnlyTransaction(t *testing.T) {
	txm := &recordingTxManager{}
	uc := NewUseCase(
		&mockSlotRepo{slots: threeSlots()},
		&mockReservationRepo{takenSlotIDs: []int64{2}},
		txm,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, txm.readOnlyCalls)
}

func TestExecute_RepoFailure(t *testing.T) {
	uc := NewUseCase(
		&mockSlotRepo{slots: threeSlots()},
		&mockReservationRepo{err: assert.AnError},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
