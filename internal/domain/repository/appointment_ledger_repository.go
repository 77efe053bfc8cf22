package repository

import (
	"docconnect/internal/domain/entity"
)

// AppointmentLedgerRepository is the append-only, session-scoped list of
// booked appointments. There are no update or delete operations and no
// durability across restarts.
type AppointmentLedgerRepository interface {
	// Append adds an appointment to the end of the ledger.
	Append(appointment *entity.Appointment)

	// All returns a copy of the ledger sorted descending by appointment date,
	// with ties kept in insertion order.
	All() []entity.Appointment
}
