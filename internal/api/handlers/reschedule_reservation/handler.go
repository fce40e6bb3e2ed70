package reschedule_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamtime/GT-BookingService/internal/api/handlers"
	"github.com/glamtime/GT-BookingService/internal/api/middleware"
	rescheduleReservation "github.com/glamtime/GT-BookingService/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgReservationNotFound  = "бронирование не найдено"
	msgSlotNotFound         = "слот не найден"
	msgForbidden            = "доступ запрещен"
	msgInvalidState         = "бронирование нельзя перенести в текущем состоянии"
	msgSlotTaken            = "слот уже забронирован на эту дату"
)

type Handler struct {
	useCase RescheduleReservationUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID, userID)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, rescheduleReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, rescheduleReservation.ErrSlotNotFound):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, rescheduleReservation.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Access denied: reservation_id=%d, user_id=%s", reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleReservation.ErrInvalidState):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid state: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgInvalidState)

		case errors.Is(err, rescheduleReservation.ErrSlotTaken):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Slot taken: slot_id=%d, date=%s", req.SlotID, req.Date)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("PATCH /reservations/{id}/reschedule - Failed to reschedule: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/reschedule - Reservation rescheduled: reservation_id=%d, user_id=%s",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
