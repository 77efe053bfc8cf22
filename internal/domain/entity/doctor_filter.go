package entity

// SortKey enumerates the numeric doctor fields the directory can be ordered by.
// An explicit accessor per key avoids looking fields up by runtime name.
type SortKey string

const (
	SortByNone       SortKey = ""
	SortByFees       SortKey = "fees"
	SortByExperience SortKey = "experience"
)

// Value returns the doctor's value for the sort key.
func (k SortKey) Value(d *Doctor) float64 {
	switch k {
	case SortByFees:
		return d.Fees
	case SortByExperience:
		return float64(d.ExperienceYears)
	}
	return 0
}

// SortOrder is the direction of an ordered directory query.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// DoctorFilter is a domain-level filter for querying the directory.
// It carries a whole search configuration and is replaced wholesale on every
// query. Used by the repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	SearchTerm       string           // case-insensitive substring match on name
	ConsultationType ConsultationType // empty = any
	Specialties      []string         // empty = no constraint; OR across entries
	SortBy           SortKey
	SortOrder        SortOrder // defaults to ascending
}
