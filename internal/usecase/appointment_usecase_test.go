package usecase

import (
	"context"
	"testing"
	"time"

	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
	"health-automation-backend/internal/testutil"
)

type clinic struct {
	env     *testEnv
	patient *entity.User
	doctor  *entity.User
}

func newClinic(t *testing.T) *clinic {
	t.Helper()
	ctx := context.Background()
	env := newTestEnv(t)

	patient := testutil.CreateUser(t, env.db, "Asha", "Rao", entity.RoleIDPatient)
	doctor := testutil.CreateUser(t, env.db, "Meera", "Iyer", entity.RoleIDDoctor)
	if _, err := env.patients.Upsert(ctx, patient.ID, nil); err != nil {
		t.Fatalf("patient profile: %v", err)
	}
	if _, err := env.doctors.Upsert(ctx, doctor.ID, nil); err != nil {
		t.Fatalf("doctor profile: %v", err)
	}

	return &clinic{env: env, patient: patient, doctor: doctor}
}

func (c *clinic) book(t *testing.T, dateTime string) *dto.AppointmentResponse {
	t.Helper()
	appointment, err := c.env.appointments.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: c.patient.ID,
		DoctorID:  c.doctor.ID,
		DateTime:  dateTime,
		Type:      testutil.Ptr("consultation"),
		Status:    testutil.Ptr("scheduled"),
	})
	if err != nil {
		t.Fatalf("Create(%s): %v", dateTime, err)
	}
	return appointment
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()
	c := newClinic(t)

	created := c.book(t, "2026-05-01T10:30:00+05:30")
	if created.ID == 0 {
		t.Fatal("expected a generated id")
	}
	want := time.Date(2026, 5, 1, 5, 0, 0, 0, time.UTC)
	if !created.DateTime.Equal(want) {
		t.Errorf("expected %s, got %s", want, created.DateTime)
	}

	got, err := c.env.appointments.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *got.PatientID != c.patient.ID || *got.DoctorID != c.doctor.ID || *got.Status != "scheduled" {
		t.Errorf("unexpected appointment: %+v", got)
	}

	if _, err := c.env.appointments.Get(ctx, created.ID+1); err != ErrAppointmentNotFound {
		t.Errorf("expected ErrAppointmentNotFound, got %v", err)
	}

	if n := countRows(t, c.env.db, &entity.AuditLog{}, "action = ?", entity.AuditActionAppointmentCreate); n != 1 {
		t.Errorf("expected 1 audit row, got %d", n)
	}
}

func TestCreateAppointmentReferences(t *testing.T) {
	ctx := context.Background()
	c := newClinic(t)
	noProfile := testutil.CreateUser(t, c.env.db, "Ravi", "Kumar", entity.RoleIDPatient)

	tests := []struct {
		name      string
		patientID int64
		doctorID  int64
	}{
		{"unknown patient", 9999, c.doctor.ID},
		{"unknown doctor", c.patient.ID, 9999},
		{"patient without profile", noProfile.ID, c.doctor.ID},
		{"doctor is not a doctor", c.patient.ID, c.patient.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.env.appointments.Create(ctx, &dto.CreateAppointmentRequest{
				PatientID: tt.patientID,
				DoctorID:  tt.doctorID,
				DateTime:  "2026-05-01T10:00:00Z",
			})
			if err != ErrReferenceNotFound {
				t.Fatalf("expected ErrReferenceNotFound, got %v", err)
			}
		})
	}

	if n := countRows(t, c.env.db, &entity.Appointment{}, "1 = 1"); n != 0 {
		t.Errorf("no appointment should be stored, got %d", n)
	}
}

func TestCreateAppointmentDateTimeFormats(t *testing.T) {
	c := newClinic(t)
	ist := time.FixedZone("IST", 5*3600+1800)
	c.env.appointments.location = ist

	local := c.book(t, "2026-05-01T10:30:00")
	if want := time.Date(2026, 5, 1, 10, 30, 0, 0, ist); !local.DateTime.Equal(want) {
		t.Errorf("local time read in server zone: expected %s, got %s", want, local.DateTime)
	}

	_, err := c.env.appointments.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: c.patient.ID,
		DoctorID:  c.doctor.ID,
		DateTime:  "next tuesday",
	})
	if err != ErrInvalidDateTime {
		t.Fatalf("expected ErrInvalidDateTime, got %v", err)
	}
}

func TestTodayUsesServerTimezone(t *testing.T) {
	c := newClinic(t)
	ist := time.FixedZone("IST", 5*3600+1800)
	c.env.appointments.location = ist
	// 20:00 UTC on 1 May is already 01:30 on 2 May in IST.
	c.env.appointments.now = func() time.Time { return time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC) }

	morning := c.book(t, "2026-05-02T09:15:00+05:30")
	c.book(t, "2026-05-01T23:59:59+05:30")
	late := c.book(t, "2026-05-02T23:59:59+05:30")
	c.book(t, "2026-05-03T00:00:00+05:30")

	var got []dto.TodayAppointmentResponse
	for appointment, err := range c.env.appointments.Today(context.Background()) {
		if err != nil {
			t.Fatalf("Today: %v", err)
		}
		got = append(got, appointment)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 appointments today, got %d: %+v", len(got), got)
	}
	if got[0].AppointmentID != morning.ID || got[1].AppointmentID != late.ID {
		t.Errorf("unexpected ids %d, %d", got[0].AppointmentID, got[1].AppointmentID)
	}
	first := got[0]
	if first.AppointmentDate != "2026-05-02" || first.AppointmentTime != "09:15:00" {
		t.Errorf("unexpected local date/time %s %s", first.AppointmentDate, first.AppointmentTime)
	}
	if first.PatientName == nil || *first.PatientName != "Asha Rao" {
		t.Errorf("unexpected patient name %v", first.PatientName)
	}
	if first.DoctorName == nil || *first.DoctorName != "Meera Iyer" {
		t.Errorf("unexpected doctor name %v", first.DoctorName)
	}
}

func TestTodayEmpty(t *testing.T) {
	c := newClinic(t)

	for _, err := range c.env.appointments.Today(context.Background()) {
		if err != nil {
			t.Fatalf("Today: %v", err)
		}
		t.Fatal("expected no appointments")
	}
}

func TestDayBounds(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	tests := []struct {
		name      string
		now       time.Time
		loc       *time.Location
		wantStart time.Time
	}{
		{
			name:      "utc",
			now:       time.Date(2026, 5, 1, 23, 59, 0, 0, time.UTC),
			loc:       time.UTC,
			wantStart: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "ahead of utc",
			now:       time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC),
			loc:       ist,
			wantStart: time.Date(2026, 5, 1, 18, 30, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := dayBounds(tt.now, tt.loc)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start: expected %s, got %s", tt.wantStart, start)
			}
			if end.Sub(start) != 24*time.Hour {
				t.Errorf("expected a 24h window, got %s", end.Sub(start))
			}
			if start.Location() != time.UTC || end.Location() != time.UTC {
				t.Error("bounds must be in UTC")
			}
		})
	}
}
