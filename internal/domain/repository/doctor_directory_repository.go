package repository

import (
	"docconnect/internal/domain/entity"
)

// DoctorDirectoryRepository is the read-only store of doctor records for a
// session. The directory is seeded once and never mutated afterwards.
type DoctorDirectoryRepository interface {
	// All returns every doctor in directory order.
	All() []entity.Doctor

	// FindByID returns the doctor with the given id, or nil when unknown.
	FindByID(id string) *entity.Doctor

	// Search applies the filter pipeline and returns the matching doctors.
	// A nil filter or an all-empty filter returns the directory unchanged.
	Search(filter *entity.DoctorFilter) []entity.Doctor

	// Suggest returns up to five doctor names containing the term,
	// case-insensitively, in directory order. An empty term returns nothing.
	Suggest(term string) []string

	// Specialties returns the distinct specialties present in the directory,
	// lexicographically sorted.
	Specialties() []string

	// ConsultationTypes returns the distinct consultation channels present in
	// the directory, lexicographically sorted.
	ConsultationTypes() []string
}
