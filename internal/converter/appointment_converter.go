package converter

import (
	"docconnect/internal/delivery/dto"
	"docconnect/internal/domain/entity"
)

const appointmentDateFormat = "2006-01-02"

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		BookingCode: appointment.BookingCode,
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.DoctorName,
		Date:        appointment.Date.Format(appointmentDateFormat),
		Time:        appointment.Time,
		Type:        string(appointment.Type),
		Notes:       appointment.Notes,
		Status:      string(appointment.Status),
		CreatedAt:   appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
