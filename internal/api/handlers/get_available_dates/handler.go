package get_available_dates

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/glamtime/GT-BookingService/internal/api/handlers"
	"github.com/glamtime/GT-BookingService/internal/domain"
	getAvailableDates "github.com/glamtime/GT-BookingService/internal/usecase/get_available_dates"
)

const (
	msgMissingRange = "отсутствуют параметры startDate и endDate"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный диапазон дат"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/available-dates?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /providers/{id}/available-dates - Missing range parameters")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-dates - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-dates - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		ProviderID: providerID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidRange):
			h.logger.Warn("GET /providers/{id}/available-dates - Invalid range: provider_id=%s, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/available-dates - Invalid input: provider_id=%s, error=%v", providerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /providers/{id}/available-dates - Failed to get dates: provider_id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/available-dates - Dates retrieved: provider_id=%s, count=%d",
		providerID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
