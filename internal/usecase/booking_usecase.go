package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"docconnect/internal/converter"
	"docconnect/internal/delivery/dto"
	"docconnect/internal/domain/entity"
	"docconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAppointmentDate  = errors.New("invalid appointment date format, use YYYY-MM-DD")
	ErrPastAppointmentDate     = errors.New("appointment date must be today or later")
	ErrInvalidAppointmentSlot  = errors.New("appointment time is not on the booking grid")
	ErrUnsupportedConsultation = errors.New("doctor does not offer this consultation type")
)

// AppointmentBookedFunc is invoked exactly once per committed appointment,
// never when a booking attempt fails validation.
type AppointmentBookedFunc func(appointment *entity.Appointment)

type BookingUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type bookingUsecase struct {
	log           *logrus.Logger
	directoryRepo repository.DoctorDirectoryRepository
	ledgerRepo    repository.AppointmentLedgerRepository
	commitLatency time.Duration
	onBooked      AppointmentBookedFunc
}

func NewBookingUsecase(
	log *logrus.Logger,
	directoryRepo repository.DoctorDirectoryRepository,
	ledgerRepo repository.AppointmentLedgerRepository,
	commitLatency time.Duration,
	onBooked AppointmentBookedFunc,
) BookingUsecase {
	return &bookingUsecase{
		log:           log,
		directoryRepo: directoryRepo,
		ledgerRepo:    ledgerRepo,
		commitLatency: commitLatency,
		onBooked:      onBooked,
	}
}

// CreateAppointment books a consultation with a doctor.
//
// Flow:
//  1. Resolve the doctor and snapshot their name
//  2. Validate date (today or later) and time (half-hour grid 09:00-17:00)
//  3. Validate the consultation type against the doctor's supported set,
//     defaulting to the doctor's first supported type when unset
//  4. Simulate the persistence latency
//  5. Append the appointment to the ledger and fire the booked hook
//
// No partial appointment exists if any step fails.
func (u *bookingUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	// Step 1: Resolve the doctor
	doctor := u.directoryRepo.FindByID(req.DoctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Step 2: Validate appointment date and time slot
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, ErrPastAppointmentDate
	}

	slot, ok := entity.NormalizeSlot(req.Time)
	if !ok {
		return nil, ErrInvalidAppointmentSlot
	}

	// Step 3: Validate the consultation type
	consultationType := entity.ConsultationType(req.Type)
	if consultationType == "" {
		consultationType = doctor.DefaultConsultationType()
	}
	if !doctor.SupportsConsultationType(consultationType) {
		return nil, ErrUnsupportedConsultation
	}

	// Step 4: Simulated persistence call. It cannot fail, but it does honor
	// cancellation so a dropped request never commits afterwards.
	if u.commitLatency > 0 {
		timer := time.NewTimer(u.commitLatency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	// Step 5: Commit to the ledger
	appointment := &entity.Appointment{
		ID:          uuid.New(),
		BookingCode: generateBookingCode(date),
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Date:        date,
		Time:        slot,
		Type:        consultationType,
		Notes:       req.Notes,
		Status:      entity.AppointmentStatusUpcoming,
		CreatedAt:   time.Now().UTC(),
	}
	u.ledgerRepo.Append(appointment)

	if u.onBooked != nil {
		u.onBooked(appointment)
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s %s, type=%s, code=%s",
		appointment.ID, doctor.ID, req.Date, slot, consultationType, appointment.BookingCode)
	return converter.AppointmentToResponse(appointment), nil
}

// GetAppointments returns the session's booked appointments, newest date first.
func (u *bookingUsecase) GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments := u.ledgerRepo.All()
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// generateBookingCode generates a human-readable code: BK-YYYYMMDD-XXXXXX
func generateBookingCode(date time.Time) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("BK-%s-%06X", date.Format("20060102"), randomBytes)
}
