package dto

// Request DTOs

type SearchDoctorsRequest struct {
	Search           string   `json:"search" validate:"omitempty,max=100"`
	ConsultationType string   `json:"consultation_type" validate:"omitempty,oneof=In-person Video Phone"`
	Specialties      []string `json:"specialties" validate:"omitempty,dive,min=1"`
	SortBy           string   `json:"sort_by" validate:"omitempty,oneof=fees experience"`
	SortOrder        string   `json:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// Response DTOs

type DoctorResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Specialties       []string `json:"specialties"`
	ConsultationTypes []string `json:"consultation_types"`
	ExperienceYears   int      `json:"experience_years"`
	Fees              float64  `json:"fees"`
	Rating            float64  `json:"rating"`
	Image             string   `json:"image"`
	Availability      []string `json:"availability"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type SuggestionListResponse struct {
	Suggestions []string `json:"suggestions"`
	Total       int      `json:"total"`
}

// CatalogResponse carries the distinct filter values present in the directory
// plus the bookable time grid, so a client can render its controls from the API.
type CatalogResponse struct {
	Specialties       []string `json:"specialties"`
	ConsultationTypes []string `json:"consultation_types"`
	AppointmentSlots  []string `json:"appointment_slots"`
}
