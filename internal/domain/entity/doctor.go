package entity

// ConsultationType represents the channel of a visit
type ConsultationType string

const (
	ConsultationInPerson ConsultationType = "In-person"
	ConsultationVideo    ConsultationType = "Video"
	ConsultationPhone    ConsultationType = "Phone"
)

// Doctor represents a directory record. Records are seeded once at load time
// and never mutated afterwards.
type Doctor struct {
	ID                string
	Name              string
	Specialties       []string
	ConsultationTypes []ConsultationType
	ExperienceYears   int
	Fees              float64
	Rating            float64
	Image             string
	Availability      []string
}

// SupportsConsultationType checks whether the doctor offers the given channel
func (d *Doctor) SupportsConsultationType(t ConsultationType) bool {
	for _, ct := range d.ConsultationTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// HasAnySpecialty checks whether the doctor covers at least one of the given specialties
func (d *Doctor) HasAnySpecialty(specialties []string) bool {
	for _, want := range specialties {
		for _, have := range d.Specialties {
			if have == want {
				return true
			}
		}
	}
	return false
}

// DefaultConsultationType returns the doctor's first supported channel,
// used when a booking request leaves the type unset.
func (d *Doctor) DefaultConsultationType() ConsultationType {
	if len(d.ConsultationTypes) == 0 {
		return ""
	}
	return d.ConsultationTypes[0]
}
