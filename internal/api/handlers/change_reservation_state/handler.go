package change_reservation_state

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamtime/GT-BookingService/internal/api/handlers"
	"github.com/glamtime/GT-BookingService/internal/api/middleware"
	changeReservationState "github.com/glamtime/GT-BookingService/internal/usecase/change_reservation_state"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgReservationNotFound  = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgInvalidState         = "недопустимый переход состояния"
	msgInvalidPrice         = "цена не может быть отрицательной"
)

type Handler struct {
	useCase ChangeReservationStateUseCase
	logger  Logger
}

func NewHandler(useCase ChangeReservationStateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/state
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/state - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/state - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ChangeStateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/state - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID, userID))
	if err != nil {
		switch {
		case errors.Is(err, changeReservationState.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/state - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, changeReservationState.ErrInvalidPrice):
			h.logger.Warn("PATCH /reservations/{id}/state - Invalid price: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, changeReservationState.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/state - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, changeReservationState.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/state - Access denied: reservation_id=%d, user_id=%s", reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, changeReservationState.ErrInvalidState):
			h.logger.Warn("PATCH /reservations/{id}/state - Invalid transition: reservation_id=%d, target=%s", reservationID, req.State)
			handlers.RespondConflict(w, msgInvalidState)

		default:
			h.logger.Error("PATCH /reservations/{id}/state - Failed to change state: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/state - State changed: reservation_id=%d, state=%s, user_id=%s",
		result.ID, result.State, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
