package get_available_dates

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
	counts map[string]int
	err    error
}

func (m *mockReservationRepo) CountActiveByDateRange(_ context.Context, _ string, _, _ string) (map[string]int, error) {
	return m.counts, m.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func slotsOfSize(n int) []*domain.Slot {
	slots := make([]*domain.Slot, 0, n)
	for i := 0; i < n; i++ {
		slots = append(slots, &domain.Slot{ID: int64(i + 1), ProviderID: "provider-1"})
	}
	return slots
}

func rangeRequest(start, end string) *Request {
	s, _ := time.Parse(domain.DateFormat, start)
	e, _ := time.Parse(domain.DateFormat, end)
	return &Request{ProviderID: "provider-1", StartDate: s, EndDate: e}
}

func formatDates(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(domain.DateFormat))
	}
	return out
}

func TestExecute_InclusiveRangeWalk(t *testing.T) {
	// 2 слота; 2026-03-02 занята полностью, 2026-03-03 частично
	uc := NewUseCase(
		&mockSlotRepo{slots: slotsOfSize(2)},
		&mockReservationRepo{counts: map[string]int{
			"2026-03-02": 2,
			"2026-03-03": 1,
		}},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), rangeRequest("2026-03-01", "2026-03-03"))
	require.NoError(t, err)

	// Обе границы диапазона включаются в обход
	assert.Equal(t, []string{"2026-03-01", "2026-03-03"}, formatDates(resp.Dates))
}

func TestExecute_SingleDayRange(t *testing.T) {
	uc := NewUseCase(
		&mockSlotRepo{slots: slotsOfSize(1)},
		&mockReservationRepo{counts: map[string]int{}},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), rangeRequest("2026-03-01", "2026-03-01"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-01"}, formatDates(resp.Dates))
}

func TestExecute_NoSlotsNoDates(t *testing.T) {
	reservations := &mockReservationRepo{err: assert.AnError}
	uc := NewUseCase(&mockSlotRepo{}, reservations, fakeTxManager{}, nopLogger{})

	// У мастера без слотов нет доступных дат; счетчики не запрашиваются
	resp, err := uc.Execute(context.Background(), rangeRequest("2026-03-01", "2026-03-05"))
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
}

func TestExecute_FullyBookedRange(t *testing.T) {
	uc := NewUseCase(
		&mockSlotRepo{slots: slotsOfSize(1)},
		&mockReservationRepo{counts: map[string]int{
			"2026-03-01": 1,
			"2026-03-02": 1,
		}},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), rangeRequest("2026-03-01", "2026-03-02"))
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&mockSlotRepo{}, &mockReservationRepo{}, fakeTxManager{}, nopLogger{})

	// Конец раньше начала
	_, err := uc.Execute(context.Background(), rangeRequest("2026-03-05", "2026-03-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Диапазон длиннее годового лимита
	_, err = uc.Execute(context.Background(), rangeRequest("2026-01-01", "2027-06-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockSlotRepo{}, &mockReservationRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StartDate: time.Now(), EndDate: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: "provider-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
