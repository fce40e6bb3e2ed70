package create_slot

import (
	"github.com/glamtime/GT-BookingService/internal/service/slots/models"
	"github.com/glamtime/GT-BookingService/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSlotRequest) ToServiceRequest(providerID string) (*models.CreateSlotRequest, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateSlotRequest{
		ProviderID: providerID,
		StartTime:  start,
		EndTime:    end,
	}, nil
}
