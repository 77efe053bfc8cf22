package repository

import (
	"sort"
	"strings"

	"docconnect/internal/domain/entity"
	domainRepo "docconnect/internal/domain/repository"
)

const maxSuggestions = 5

// doctorDirectoryRepository holds the immutable in-memory directory. The
// distinct-value catalogs are derived once at construction since the records
// never change. Reads need no locking for the same reason.
type doctorDirectoryRepository struct {
	doctors           []entity.Doctor
	names             []string
	specialties       []string
	consultationTypes []string
}

func NewDoctorDirectoryRepository(doctors []entity.Doctor) domainRepo.DoctorDirectoryRepository {
	seeded := make([]entity.Doctor, len(doctors))
	copy(seeded, doctors)

	names := make([]string, len(seeded))
	for i, doctor := range seeded {
		names[i] = doctor.Name
	}

	return &doctorDirectoryRepository{
		doctors:           seeded,
		names:             names,
		specialties:       distinctSpecialties(seeded),
		consultationTypes: distinctConsultationTypes(seeded),
	}
}

func (r *doctorDirectoryRepository) All() []entity.Doctor {
	out := make([]entity.Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out
}

func (r *doctorDirectoryRepository) FindByID(id string) *entity.Doctor {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			doctor := r.doctors[i]
			return &doctor
		}
	}
	return nil
}

// Search runs the filter pipeline in fixed order: name substring, consultation
// type, specialty OR-set, then an optional stable sort. Each pass narrows or
// reorders a working copy; the seeded slice is never touched and no match
// yields an empty result, not an error.
func (r *doctorDirectoryRepository) Search(filter *entity.DoctorFilter) []entity.Doctor {
	result := r.All()
	if filter == nil {
		return result
	}

	if filter.SearchTerm != "" {
		term := strings.ToLower(filter.SearchTerm)
		result = keep(result, func(d *entity.Doctor) bool {
			return strings.Contains(strings.ToLower(d.Name), term)
		})
	}

	if filter.ConsultationType != "" {
		result = keep(result, func(d *entity.Doctor) bool {
			return d.SupportsConsultationType(filter.ConsultationType)
		})
	}

	if len(filter.Specialties) > 0 {
		result = keep(result, func(d *entity.Doctor) bool {
			return d.HasAnySpecialty(filter.Specialties)
		})
	}

	if filter.SortBy != entity.SortByNone {
		descending := filter.SortOrder == entity.SortDescending
		sort.SliceStable(result, func(i, j int) bool {
			a := filter.SortBy.Value(&result[i])
			b := filter.SortBy.Value(&result[j])
			if descending {
				return a > b
			}
			return a < b
		})
	}

	return result
}

func (r *doctorDirectoryRepository) Suggest(term string) []string {
	matches := make([]string, 0, maxSuggestions)
	if term == "" {
		return matches
	}

	lowered := strings.ToLower(term)
	for _, name := range r.names {
		if strings.Contains(strings.ToLower(name), lowered) {
			matches = append(matches, name)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches
}

func (r *doctorDirectoryRepository) Specialties() []string {
	out := make([]string, len(r.specialties))
	copy(out, r.specialties)
	return out
}

func (r *doctorDirectoryRepository) ConsultationTypes() []string {
	out := make([]string, len(r.consultationTypes))
	copy(out, r.consultationTypes)
	return out
}

func keep(doctors []entity.Doctor, match func(*entity.Doctor) bool) []entity.Doctor {
	kept := make([]entity.Doctor, 0, len(doctors))
	for i := range doctors {
		if match(&doctors[i]) {
			kept = append(kept, doctors[i])
		}
	}
	return kept
}

func distinctSpecialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	for i := range doctors {
		for _, specialty := range doctors[i].Specialties {
			seen[specialty] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func distinctConsultationTypes(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	for i := range doctors {
		for _, consultationType := range doctors[i].ConsultationTypes {
			seen[string(consultationType)] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
