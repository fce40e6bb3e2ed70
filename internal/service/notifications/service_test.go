package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/GT-BookingService/internal/domain"
	notificationRepo "github.com/glamtime/GT-BookingService/internal/infra/storage/notification"
	"github.com/glamtime/GT-BookingService/pkg/ptr"
)

type mockNotificationRepo struct {
	list        []*domain.Notification
	unreadCount int
	notFound    bool

	gotUnreadOnly bool
	markedReadID  int64
	markedAll     bool
	deletedID     int64
}

func (m *mockNotificationRepo) ListByRecipient(_ context.Context, _ string, _ domain.RecipientRole, unreadOnly bool) ([]*domain.Notification, error) {
	m.gotUnreadOnly = unreadOnly
	return m.list, nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, _ string, _ domain.RecipientRole) (int, error) {
	return m.unreadCount, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id int64) error {
	if m.notFound {
		return notificationRepo.ErrNotificationNotFound
	}
	m.markedReadID = id
	return nil
}

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, _ string, _ domain.RecipientRole) error {
	m.markedAll = true
	return nil
}

func (m *mockNotificationRepo) Delete(_ context.Context, id int64) error {
	if m.notFound {
		return notificationRepo.ErrNotificationNotFound
	}
	m.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList(t *testing.T) {
	repo := &mockNotificationRepo{
		list: []*domain.Notification{
			{ID: 1, ReservationID: 10, Message: "msg", ClientID: ptr.Ptr("client-1")},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), "client-1", "client", true)
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, int64(10), resp.Notifications[0].ReservationID)
	assert.True(t, repo.gotUnreadOnly)
}

func TestList_InvalidRole(t *testing.T) {
	svc := NewService(&mockNotificationRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), "client-1", "admin", false)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCountUnread(t *testing.T) {
	svc := NewService(&mockNotificationRepo{unreadCount: 3}, nopLogger{})

	resp, err := svc.CountUnread(context.Background(), "provider-1", "provider")
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Count)
}

func TestMarkRead(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.MarkRead(context.Background(), 7))
	assert.Equal(t, int64(7), repo.markedReadID)
}

func TestMarkRead_NotFound(t *testing.T) {
	svc := NewService(&mockNotificationRepo{notFound: true}, nopLogger{})

	err := svc.MarkRead(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkAllRead(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.MarkAllRead(context.Background(), "client-1", "client"))
	assert.True(t, repo.markedAll)
}

func TestMarkAllRead_InvalidRole(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.MarkAllRead(context.Background(), "client-1", "")
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.False(t, repo.markedAll)
}

func TestDelete(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, int64(9), repo.deletedID)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&mockNotificationRepo{notFound: true}, nopLogger{})

	err := svc.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
