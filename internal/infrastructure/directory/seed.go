package directory

import (
	"docconnect/internal/domain/entity"
)

// Seed returns the static directory dataset. Returned fresh on every call so
// callers can never alias the canonical records.
func Seed() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:                "1",
			Name:              "Dr. Sarah Johnson",
			Specialties:       []string{"Cardiology", "Internal Medicine"},
			ConsultationTypes: []entity.ConsultationType{entity.ConsultationInPerson, entity.ConsultationVideo},
			ExperienceYears:   12,
			Fees:              150,
			Rating:            4.8,
			Image:             "https://images.pexels.com/photos/5452293/pexels-photo-5452293.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Availability:      []string{"Mon", "Wed", "Fri"},
		},
		{
			ID:                "2",
			Name:              "Dr. Michael Chen",
			Specialties:       []string{"Neurology"},
			ConsultationTypes: []entity.ConsultationType{entity.ConsultationInPerson},
			ExperienceYears:   8,
			Fees:              200,
			Rating:            4.5,
			Image:             "https://images.pexels.com/photos/5327585/pexels-photo-5327585.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Availability:      []string{"Tue", "Thu"},
		},
		{
			ID:                "3",
			Name:              "Dr. Emily Rodriguez",
			Specialties:       []string{"Pediatrics"},
			ConsultationTypes: []entity.ConsultationType{entity.ConsultationInPerson, entity.ConsultationVideo, entity.ConsultationPhone},
			ExperienceYears:   15,
			Fees:              120,
			Rating:            4.9,
			Image:             "https://images.pexels.com/photos/5215024/pexels-photo-5215024.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Availability:      []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		},
		{
			ID:                "4",
			Name:              "Dr. James Wilson",
			Specialties:       []string{"Orthopedics", "Sports Medicine"},
			ConsultationTypes: []entity.ConsultationType{entity.ConsultationInPerson, entity.ConsultationVideo},
			ExperienceYears:   20,
			Fees:              250,
			Rating:            4.7,
			Image:             "https://images.pexels.com/photos/4173239/pexels-photo-4173239.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Availability:      []string{"Mon", "Wed", "Fri"},
		},
		{
			ID:                "5",
			Name:              "Dr. Nina Patel",
			Specialties:       []string{"Dermatology"},
			ConsultationTypes: []entity.ConsultationType{entity.ConsultationVideo, entity.ConsultationPhone},
			ExperienceYears:   10,
			Fees:              180,
			Rating:            4.6,
			Image:             "https://images.pexels.com/photos/5407206/pexels-photo-5407206.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Availability:      []string{"Tue", "Thu", "Sat"},
		},
		{
			ID:                "6",
			Name:              "Dr. Robert Kim",
			Specialties:       []string{"Psychiatry"},
			ConsultationTypes: []entity.ConsultationType{entity.ConsultationVideo, entity.ConsultationPhone},
			ExperienceYears:   18,
			Fees:              220,
			Rating:            4.8,
			Image:             "https://images.pexels.com/photos/5207103/pexels-photo-5207103.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Availability:      []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		},
		{
			ID:                "7",
			Name:              "Dr. Lisa Thompson",
			Specialties:       []string{"Gynecology", "Obstetrics"},
			ConsultationTypes: []entity.ConsultationType{entity.ConsultationInPerson, entity.ConsultationVideo},
			ExperienceYears:   14,
			Fees:              190,
			Rating:            4.9,
			Image:             "https://images.pexels.com/photos/5214959/pexels-photo-5214959.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Availability:      []string{"Mon", "Wed", "Fri"},
		},
		{
			ID:                "8",
			Name:              "Dr. David Garcia",
			Specialties:       []string{"Ophthalmology"},
			ConsultationTypes: []entity.ConsultationType{entity.ConsultationInPerson},
			ExperienceYears:   22,
			Fees:              210,
			Rating:            4.7,
			Image:             "https://images.pexels.com/photos/4173239/pexels-photo-4173239.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Availability:      []string{"Tue", "Thu"},
		},
		{
			ID:                "9",
			Name:              "Dr. Sophia Lee",
			Specialties:       []string{"Endocrinology", "Internal Medicine"},
			ConsultationTypes: []entity.ConsultationType{entity.ConsultationInPerson, entity.ConsultationVideo, entity.ConsultationPhone},
			ExperienceYears:   9,
			Fees:              160,
			Rating:            4.5,
			Image:             "https://images.pexels.com/photos/5214995/pexels-photo-5214995.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Availability:      []string{"Mon", "Wed", "Fri"},
		},
		{
			ID:                "10",
			Name:              "Dr. Mark Davis",
			Specialties:       []string{"Cardiology"},
			ConsultationTypes: []entity.ConsultationType{entity.ConsultationInPerson, entity.ConsultationVideo},
			ExperienceYears:   25,
			Fees:              280,
			Rating:            4.9,
			Image:             "https://images.pexels.com/photos/4225880/pexels-photo-4225880.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Availability:      []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		},
	}
}
