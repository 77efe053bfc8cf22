package usecase

import (
	"context"
	"io"
	"regexp"
	"testing"
	"time"

	"docconnect/internal/delivery/dto"
	"docconnect/internal/domain/entity"
	"docconnect/internal/infrastructure/directory"
	"docconnect/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingCodePattern = regexp.MustCompile(`^BK-\d{8}-[0-9A-F]{6}$`)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func dateFromToday(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

type bookingFixture struct {
	usecase     BookingUsecase
	ledger      []entity.Appointment // filled by the hook
	hookedCount int
}

func newBookingFixture(latency time.Duration) (*bookingFixture, BookingUsecase) {
	f := &bookingFixture{}
	directoryRepo := repository.NewDoctorDirectoryRepository(directory.Seed())
	ledgerRepo := repository.NewAppointmentLedgerRepository()
	f.usecase = NewBookingUsecase(testLogger(), directoryRepo, ledgerRepo, latency, func(appointment *entity.Appointment) {
		f.hookedCount++
		f.ledger = append(f.ledger, *appointment)
	})
	return f, f.usecase
}

func TestBookingUsecase_CreateAppointment(t *testing.T) {
	ctx := context.Background()

	f, uc := newBookingFixture(0)
	got, err := uc.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		DoctorID: "3",
		Date:     dateFromToday(1),
		Time:     "10:30",
		Type:     "Video",
		Notes:    "first visit",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Regexp(t, bookingCodePattern, got.BookingCode)
	assert.Equal(t, "3", got.DoctorID)
	assert.Equal(t, "Dr. Emily Rodriguez", got.DoctorName)
	assert.Equal(t, dateFromToday(1), got.Date)
	assert.Equal(t, "10:30", got.Time)
	assert.Equal(t, "Video", got.Type)
	assert.Equal(t, "first visit", got.Notes)
	assert.Equal(t, string(entity.AppointmentStatusUpcoming), got.Status)
	assert.WithinDuration(t, time.Now().UTC(), got.CreatedAt, time.Minute)

	// The booked hook fired exactly once, with the committed appointment.
	assert.Equal(t, 1, f.hookedCount)
	require.Len(t, f.ledger, 1)
	assert.Equal(t, got.ID, f.ledger[0].ID)
	view, err := uc.GetAppointments(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, view.Total)
	assert.Equal(t, got.ID, view.Appointments[0].ID)
}

func TestBookingUsecase_CreateAppointment_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *dto.CreateAppointmentRequest
		wantErr error
	}{
		{
			name:    "unknown doctor",
			req:     &dto.CreateAppointmentRequest{DoctorID: "999", Date: dateFromToday(1), Time: "10:30"},
			wantErr: ErrDoctorNotFound,
		},
		{
			name:    "malformed date",
			req:     &dto.CreateAppointmentRequest{DoctorID: "3", Date: "01/09/2026", Time: "10:30"},
			wantErr: ErrInvalidAppointmentDate,
		},
		{
			name:    "past date",
			req:     &dto.CreateAppointmentRequest{DoctorID: "3", Date: dateFromToday(-1), Time: "10:30"},
			wantErr: ErrPastAppointmentDate,
		},
		{
			name:    "time off the grid",
			req:     &dto.CreateAppointmentRequest{DoctorID: "3", Date: dateFromToday(1), Time: "10:15"},
			wantErr: ErrInvalidAppointmentSlot,
		},
		{
			name:    "time after closing",
			req:     &dto.CreateAppointmentRequest{DoctorID: "3", Date: dateFromToday(1), Time: "17:30"},
			wantErr: ErrInvalidAppointmentSlot,
		},
		{
			name:    "consultation type the doctor does not offer",
			req:     &dto.CreateAppointmentRequest{DoctorID: "2", Date: dateFromToday(1), Time: "10:30", Type: "Phone"},
			wantErr: ErrUnsupportedConsultation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, uc := newBookingFixture(0)

			got, err := uc.CreateAppointment(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)

			// No partial appointment exists and the hook never fired.
			view, viewErr := uc.GetAppointments(ctx)
			require.NoError(t, viewErr)
			assert.Zero(t, view.Total)
			assert.Zero(t, f.hookedCount)
		})
	}
}

func TestBookingUsecase_CreateAppointment_TodayIsBookable(t *testing.T) {
	_, uc := newBookingFixture(0)

	got, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID: "3",
		Date:     dateFromToday(0),
		Time:     "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, dateFromToday(0), got.Date)
}

func TestBookingUsecase_CreateAppointment_DefaultsToFirstSupportedType(t *testing.T) {
	_, uc := newBookingFixture(0)

	// Doctor 5 offers Video then Phone; an unset type falls back to Video.
	got, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID: "5",
		Date:     dateFromToday(2),
		Time:     "11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Video", got.Type)
}

func TestBookingUsecase_CreateAppointment_NormalizesSlot(t *testing.T) {
	_, uc := newBookingFixture(0)

	got, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID: "3",
		Date:     dateFromToday(1),
		Time:     "9:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:30", got.Time)
}

func TestBookingUsecase_CreateAppointment_CancelledContext(t *testing.T) {
	f, uc := newBookingFixture(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := uc.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		DoctorID: "3",
		Date:     dateFromToday(1),
		Time:     "10:30",
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)

	view, viewErr := uc.GetAppointments(context.Background())
	require.NoError(t, viewErr)
	assert.Zero(t, view.Total)
	assert.Zero(t, f.hookedCount)
}

func TestBookingUsecase_GetAppointments_OrderedByDateDescending(t *testing.T) {
	ctx := context.Background()
	_, uc := newBookingFixture(0)

	first, err := uc.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		DoctorID: "3", Date: dateFromToday(1), Time: "10:30", Type: "Video",
	})
	require.NoError(t, err)
	second, err := uc.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		DoctorID: "10", Date: dateFromToday(3), Time: "14:00", Type: "In-person",
	})
	require.NoError(t, err)

	view, err := uc.GetAppointments(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, view.Total)
	assert.Equal(t, second.ID, view.Appointments[0].ID)
	assert.Equal(t, first.ID, view.Appointments[1].ID)
}
