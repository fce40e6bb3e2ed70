package slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/GT-BookingService/internal/domain"
	slotRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/slot"
	"github.com/glamtime/GT-BookingService/internal/integrations/userservice"
	"github.com/glamtime/GT-BookingService/internal/service/slots/models"
	"github.com/glamtime/GT-BookingService/pkg/types"
)

type mockSlotRepo struct {
	existing *domain.Slot
	conflict *domain.Slot

	created      *domain.Slot
	updated      *domain.Slot
	deleted      bool
	listResponse []*domain.Slot
}

func (m *mockSlotRepo) Create(_ context.Context, s *domain.Slot) (*domain.Slot, error) {
	created := *s
	created.ID = 1
	m.created = &created
	return &created, nil
}

func (m *mockSlotRepo) GetByID(_ context.Context, _ int64) (*domain.Slot, error) {
	if m.existing == nil {
		return nil, slotRepo.ErrSlotNotFound
	}
	s := *m.existing
	return &s, nil
}

func (m *mockSlotRepo) ListByProvider(_ context.Context, _ string) ([]*domain.Slot, error) {
	return m.listResponse, nil
}

func (m *mockSlotRepo) FindOverlapping(_ context.Context, _ string, _, _ types.TimeString, excludeID *int64) (*domain.Slot, error) {
	if m.conflict == nil {
		return nil, slotRepo.ErrSlotNotFound
	}
	if excludeID != nil && m.conflict.ID == *excludeID {
		return nil, slotRepo.ErrSlotNotFound
	}
	return m.conflict, nil
}

func (m *mockSlotRepo) Update(_ context.Context, s *domain.Slot) (*domain.Slot, error) {
	updated := *s
	m.updated = &updated
	return &updated, nil
}

func (m *mockSlotRepo) Delete(_ context.Context, _ int64) error {
	m.deleted = true
	return nil
}

type mockReservationRepo struct {
	activeCount int
}

func (m *mockReservationRepo) CountActiveBySlot(_ context.Context, _ int64) (int, error) {
	return m.activeCount, nil
}

type mockUserClient struct {
	err error
}

func (m *mockUserClient) GetProvider(_ context.Context, id string) (*userservice.Provider, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &userservice.Provider{ID: id}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *mockSlotRepo, reservations *mockReservationRepo, users *mockUserClient) *Service {
	return NewService(repo, reservations, users, fakeTxManager{}, nopLogger{})
}

func createReq(start, end string) *models.CreateSlotRequest {
	return &models.CreateSlotRequest{
		ProviderID: "provider-1",
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &mockSlotRepo{}
	svc := newService(repo, &mockReservationRepo{}, &mockUserClient{})

	resp, err := svc.Create(context.Background(), createReq("09:00", "10:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "10:00", resp.EndTime)
	require.NotNil(t, repo.created)
}

func TestCreate_OverlapRejected(t *testing.T) {
	repo := &mockSlotRepo{
		conflict: &domain.Slot{ID: 7, ProviderID: "provider-1", StartTime: "09:30", EndTime: "10:30"},
	}
	svc := newService(repo, &mockReservationRepo{}, &mockUserClient{})

	_, err := svc.Create(context.Background(), createReq("09:00", "10:00"))
	assert.ErrorIs(t, err, ErrSlotOverlap)
	assert.Nil(t, repo.created)
}

func TestCreate_InvalidTimeRange(t *testing.T) {
	svc := newService(&mockSlotRepo{}, &mockReservationRepo{}, &mockUserClient{})

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{name: "start equals end", start: "10:00", end: "10:00", wantErr: ErrInvalidTimeRange},
		{name: "start after end", start: "11:00", end: "10:00", wantErr: ErrInvalidTimeRange},
		{name: "empty start", start: "", end: "10:00", wantErr: ErrInvalidInput},
		{name: "malformed time", start: "9am", end: "10:00", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), createReq(tt.start, tt.end))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_ProviderNotFound(t *testing.T) {
	svc := newService(&mockSlotRepo{}, &mockReservationRepo{}, &mockUserClient{err: userservice.ErrProviderNotFound})

	_, err := svc.Create(context.Background(), createReq("09:00", "10:00"))
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestUpdate_Success(t *testing.T) {
	repo := &mockSlotRepo{
		existing: &domain.Slot{ID: 5, ProviderID: "provider-1", StartTime: "09:00", EndTime: "10:00"},
	}
	svc := newService(repo, &mockReservationRepo{}, &mockUserClient{})

	resp, err := svc.Update(context.Background(), 5, &models.UpdateSlotRequest{
		ProviderID: "provider-1",
		StartTime:  "10:00",
		EndTime:    "11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
}

func TestUpdate_IgnoresOwnSlotInOverlapCheck(t *testing.T) {
	own := &domain.Slot{ID: 5, ProviderID: "provider-1", StartTime: "09:00", EndTime: "10:00"}
	repo := &mockSlotRepo{existing: own, conflict: own}
	svc := newService(repo, &mockReservationRepo{}, &mockUserClient{})

	_, err := svc.Update(context.Background(), 5, &models.UpdateSlotRequest{
		ProviderID: "provider-1",
		StartTime:  "09:15",
		EndTime:    "10:15",
	})
	require.NoError(t, err)
}

func TestUpdate_NotOwner(t *testing.T) {
	repo := &mockSlotRepo{
		existing: &domain.Slot{ID: 5, ProviderID: "provider-1", StartTime: "09:00", EndTime: "10:00"},
	}
	svc := newService(repo, &mockReservationRepo{}, &mockUserClient{})

	_, err := svc.Update(context.Background(), 5, &models.UpdateSlotRequest{
		ProviderID: "provider-2",
		StartTime:  "10:00",
		EndTime:    "11:00",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newService(&mockSlotRepo{}, &mockReservationRepo{}, &mockUserClient{})

	_, err := svc.Update(context.Background(), 5, &models.UpdateSlotRequest{
		ProviderID: "provider-1",
		StartTime:  "10:00",
		EndTime:    "11:00",
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo := &mockSlotRepo{
		existing: &domain.Slot{ID: 5, ProviderID: "provider-1"},
	}
	svc := newService(repo, &mockReservationRepo{}, &mockUserClient{})

	require.NoError(t, svc.Delete(context.Background(), 5, "provider-1"))
	assert.True(t, repo.deleted)
}

func TestDelete_GuardsActiveReservations(t *testing.T) {
	repo := &mockSlotRepo{
		existing: &domain.Slot{ID: 5, ProviderID: "provider-1"},
	}
	svc := newService(repo, &mockReservationRepo{activeCount: 2}, &mockUserClient{})

	err := svc.Delete(context.Background(), 5, "provider-1")
	assert.ErrorIs(t, err, ErrSlotHasReservations)
	assert.False(t, repo.deleted)
}

func TestDelete_NotOwner(t *testing.T) {
	repo := &mockSlotRepo{
		existing: &domain.Slot{ID: 5, ProviderID: "provider-1"},
	}
	svc := newService(repo, &mockReservationRepo{}, &mockUserClient{})

	err := svc.Delete(context.Background(), 5, "provider-2")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.deleted)
}

func TestListByProvider(t *testing.T) {
	repo := &mockSlotRepo{
		listResponse: []*domain.Slot{
			{ID: 1, ProviderID: "provider-1", StartTime: "09:00", EndTime: "10:00"},
			{ID: 2, ProviderID: "provider-1", StartTime: "10:00", EndTime: "11:00"},
		},
	}
	svc := newService(repo, &mockReservationRepo{}, &mockUserClient{})

	resp, err := svc.ListByProvider(context.Background(), "provider-1")
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
}
