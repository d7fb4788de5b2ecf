package dto

import (
	"time"

	"github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
)

type BookingDTO struct {
	ID           int64  `json:"id,omitempty"`
	ClientID     int64  `json:"client_id"`
	TechnicianID int64  `json:"technician_id"`
	ServiceID    int64  `json:"service_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
}

func FromBooking(b *appointment.Booking) BookingDTO {
	return BookingDTO{
		ID:           b.ID,
		ClientID:     b.ClientID,
		TechnicianID: b.TechnicianID,
		ServiceID:    b.ServiceID,
		Date:         b.Date.Format(time.DateOnly),
		StartTime:    b.Start.String(),
		EndTime:      b.End.String(),
		Status:       string(b.Status),
	}
}
