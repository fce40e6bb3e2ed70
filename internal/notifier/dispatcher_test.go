package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/GT-BookingService/internal/domain"
)

type mockNotificationRepo struct {
	created []*domain.Notification
	err     error
}

func (m *mockNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, n)
	return n, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestNotifyProvider(t *testing.T) {
	repo := &mockNotificationRepo{}
	d := NewDispatcher(repo, nopLogger{})

	d.NotifyProvider(context.Background(), 42, "Новое бронирование", "provider-1")

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, int64(42), n.ReservationID)
	assert.Equal(t, "Новое бронирование", n.Message)
	require.NotNil(t, n.ProviderID)
	assert.Equal(t, "provider-1", *n.ProviderID)
	assert.Nil(t, n.ClientID)
}

func TestNotifyClient(t *testing.T) {
	repo := &mockNotificationRepo{}
	d := NewDispatcher(repo, nopLogger{})

	d.NotifyClient(context.Background(), 42, "Бронирование подтверждено", "client-1")

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	require.NotNil(t, n.ClientID)
	assert.Equal(t, "client-1", *n.ClientID)
	assert.Nil(t, n.ProviderID)
}

func TestDispatchIsBestEffort(t *testing.T) {
	repo := &mockNotificationRepo{err: errors.New("connection refused")}
	d := NewDispatcher(repo, nopLogger{})

	// Сбой репозитория не должен приводить к панике или возврату ошибки
	d.NotifyProvider(context.Background(), 42, "msg", "provider-1")
	assert.Empty(t, repo.created)
}

func TestMessageTruncatedToColumnLimit(t *testing.T) {
	repo := &mockNotificationRepo{}
	d := NewDispatcher(repo, nopLogger{})

	long := strings.Repeat("a", domain.MaxMessageLength+100)
	d.NotifyProvider(context.Background(), 42, long, "provider-1")

	require.Len(t, repo.created, 1)
	assert.Len(t, repo.created[0].Message, domain.MaxMessageLength)
}

func TestTruncationCountsRunesNotBytes(t *testing.T) {
	repo := &mockNotificationRepo{}
	d := NewDispatcher(repo, nopLogger{})

	// Кириллица - 2 байта на руну: сообщение укладывается в лимит
	// по символам, хотя по байтам превышает его вдвое
	fits := strings.Repeat("ы", domain.MaxMessageLength)
	d.NotifyProvider(context.Background(), 1, fits, "provider-1")

	require.Len(t, repo.created, 1)
	assert.Equal(t, fits, repo.created[0].Message)

	// Превышение лимита режется по границе руны, без битого UTF-8
	over := "a" + strings.Repeat("ы", domain.MaxMessageLength)
	d.NotifyProvider(context.Background(), 2, over, "provider-1")

	require.Len(t, repo.created, 2)
	got := repo.created[1].Message
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, domain.MaxMessageLength, utf8.RuneCountInString(got))
}
