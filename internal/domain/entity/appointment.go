package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "upcoming"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked consultation. It is immutable once created:
// appointments are appended to the ledger and never edited or removed.
type Appointment struct {
	ID          uuid.UUID
	BookingCode string
	DoctorID    string
	DoctorName  string // snapshot of the doctor's name at booking time
	Date        time.Time
	Time        string // HH:MM slot on the booking grid
	Type        ConsultationType
	Notes       string
	Status      AppointmentStatus
	CreatedAt   time.Time
}

// IsUpcoming checks if the appointment has not happened yet
func (a *Appointment) IsUpcoming() bool {
	return a.Status == AppointmentStatusUpcoming
}

// IsCompleted checks if the appointment already took place
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment was called off
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
