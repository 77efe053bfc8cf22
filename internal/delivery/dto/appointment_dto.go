package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=In-person Video Phone"`
	Notes    string `json:"notes" validate:"omitempty,max=500"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingCode string    `json:"booking_code"`
	DoctorID    string    `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Type        string    `json:"type"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
