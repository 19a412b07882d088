package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-book/internal/models"
)

// AppointmentResponse is the external projection of an appointment record.
type AppointmentResponse struct {
	ID           uuid.UUID       `json:"id"`
	BarberID     uuid.UUID       `json:"barber_id"`
	ClientID     uuid.UUID       `json:"client_id"`
	BarbershopID uuid.UUID       `json:"barbershop_id"`
	ServiceID    uuid.UUID       `json:"service_id"`
	StartTime    time.Time       `json:"start_time"`
	EndTime      time.Time       `json:"end_time"`
	Price        decimal.Decimal `json:"price"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

func AppointmentToResponse(ap *models.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:           ap.ID,
		BarberID:     ap.BarberID,
		ClientID:     ap.ClientID,
		BarbershopID: ap.BarbershopID,
		ServiceID:    ap.ServiceID,
		StartTime:    ap.StartTime,
		EndTime:      ap.EndTime,
		Price:        ap.Price,
		Status:       ap.Status,
		CreatedAt:    ap.CreatedAt,
	}
}

func AppointmentsToResponses(aps []models.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(aps))
	for i := range aps {
		out = append(out, AppointmentToResponse(&aps[i]))
	}
	return out
}
