package converter

import (
	"docconnect/internal/delivery/dto"
	"docconnect/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	consultationTypes := make([]string, len(doctor.ConsultationTypes))
	for i, consultationType := range doctor.ConsultationTypes {
		consultationTypes[i] = string(consultationType)
	}

	return &dto.DoctorResponse{
		ID:                doctor.ID,
		Name:              doctor.Name,
		Specialties:       doctor.Specialties,
		ConsultationTypes: consultationTypes,
		ExperienceYears:   doctor.ExperienceYears,
		Fees:              doctor.Fees,
		Rating:            doctor.Rating,
		Image:             doctor.Image,
		Availability:      doctor.Availability,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
