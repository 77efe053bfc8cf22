package repository

import (
	"sort"
	"sync"

	"docconnect/internal/domain/entity"
	domainRepo "docconnect/internal/domain/repository"
)

// appointmentLedgerRepository keeps booked appointments in process memory for
// the life of the session. The mutex serializes appends from concurrent
// requests; nothing is ever updated or removed.
type appointmentLedgerRepository struct {
	mu           sync.Mutex
	appointments []entity.Appointment
}

func NewAppointmentLedgerRepository() domainRepo.AppointmentLedgerRepository {
	return &appointmentLedgerRepository{}
}

func (r *appointmentLedgerRepository) Append(appointment *entity.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append(r.appointments, *appointment)
}

// All returns the ledger newest-date first. The stable sort keeps same-date
// appointments in the order they were booked. Callers get a copy, so mutating
// the result cannot corrupt the ledger.
func (r *appointmentLedgerRepository) All() []entity.Appointment {
	r.mu.Lock()
	out := make([]entity.Appointment, len(r.appointments))
	copy(out, r.appointments)
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
