package change_reservation_state

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/GT-BookingService/internal/api/middleware"
	changeReservationState "github.com/glamtime/GT-BookingService/internal/usecase/change_reservation_state"
)

type mockUseCase struct {
	executeFunc func(ctx context.Context, req *changeReservationState.Request) (*changeReservationState.Response, error)

	gotRequest *changeReservationState.Request
}

func (m *mockUseCase) Execute(ctx context.Context, req *changeReservationState.Request) (*changeReservationState.Response, error) {
	m.gotRequest = req
	return m.executeFunc(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *mockUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.Handle("/api/v1/reservations/{reservationId}/state",
		middleware.Auth(http.HandlerFunc(h.Handle))).Methods(http.MethodPatch)
	return r
}

func doRequest(t *testing.T, router *mux.Router, path string, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(payload))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(_ context.Context, req *changeReservationState.Request) (*changeReservationState.Response, error) {
			return &changeReservationState.Response{
				ID:        req.ReservationID,
				ClientID:  "client-1",
				SlotID:    5,
				ServiceID: 3,
				Date:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				State:     "confirmed",
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		},
	}
	router := newRouter(uc)

	rec := doRequest(t, router, "/api/v1/reservations/10/state", "provider-1",
		ChangeStateRequest{State: "confirmed"})

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.gotRequest)
	assert.Equal(t, int64(10), uc.gotRequest.ReservationID)
	assert.Equal(t, "provider-1", uc.gotRequest.ActorID)
	assert.Equal(t, "confirmed", uc.gotRequest.TargetState)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "confirmed", resp.State)
	assert.Equal(t, "2026-03-01", resp.Date)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{name: "invalid input", useCaseErr: changeReservationState.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "invalid price", useCaseErr: changeReservationState.ErrInvalidPrice, wantStatus: http.StatusBadRequest},
		{name: "not found", useCaseErr: changeReservationState.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{name: "access denied", useCaseErr: changeReservationState.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "invalid transition", useCaseErr: changeReservationState.ErrInvalidState, wantStatus: http.StatusConflict},
		{name: "internal", useCaseErr: changeReservationState.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				executeFunc: func(context.Context, *changeReservationState.Request) (*changeReservationState.Response, error) {
					return nil, tt.useCaseErr
				},
			}
			router := newRouter(uc)

			rec := doRequest(t, router, "/api/v1/reservations/10/state", "provider-1",
				ChangeStateRequest{State: "confirmed"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestHandle_MissingUserID(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(context.Context, *changeReservationState.Request) (*changeReservationState.Response, error) {
			t.Fatal("use case must not be called without authentication")
			return nil, nil
		},
	}
	router := newRouter(uc)

	rec := doRequest(t, router, "/api/v1/reservations/10/state", "",
		ChangeStateRequest{State: "confirmed"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.gotRequest)
}

func TestHandle_InvalidReservationID(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(context.Context, *changeReservationState.Request) (*changeReservationState.Response, error) {
			t.Fatal("use case must not be called for a malformed ID")
			return nil, nil
		},
	}
	router := newRouter(uc)

	rec := doRequest(t, router, "/api/v1/reservations/abc/state", "provider-1",
		ChangeStateRequest{State: "confirmed"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &mockUseCase{
		executeFunc: func(context.Context, *changeReservationState.Request) (*changeReservationState.Response, error) {
			t.Fatal("use case must not be called for a malformed body")
			return nil, nil
		},
	}
	h := NewHandler(uc, nopLogger{})
	router := mux.NewRouter()
	router.Handle("/api/v1/reservations/{reservationId}/state",
		middleware.Auth(http.HandlerFunc(h.Handle))).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/10/state",
		bytes.NewReader([]byte(`{"state": "confirmed", "unknown": true}`)))
	req.Header.Set("X-User-ID", "provider-1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
