package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

type AppointmentService struct {
	records *Records
	logger  zerolog.Logger
}

func NewAppointmentService(records *Records, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{records: records, logger: logger}
}

// ListAppointments returns appointments in storage order, which is newest
// first because AddAppointment prepends.
func (s *AppointmentService) ListAppointments(ctx context.Context) ([]ports.VersionedAppointment, error) {
	appointments, err := s.records.loadAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return versioned(appointments), nil
}

// SearchAppointments keeps appointments whose applicant name contains term
// (case-insensitive) or whose CPF contains term. An empty term keeps all.
func (s *AppointmentService) SearchAppointments(ctx context.Context, term string) ([]ports.VersionedAppointment, error) {
	appointments, err := s.records.loadAppointments(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return versioned(appointments), nil
	}

	lower := strings.ToLower(term)
	matched := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if strings.Contains(strings.ToLower(a.ApplicantName), lower) || strings.Contains(a.CPF, term) {
			matched = append(matched, a)
		}
	}
	return versioned(matched), nil
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id string) (*ports.VersionedAppointment, error) {
	appointments, err := s.records.loadAppointments(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range appointments {
		if a.ID == id {
			return &ports.VersionedAppointment{Appointment: a, Version: versionOf(a)}, nil
		}
	}
	return nil, domain.ErrAppointmentNotFound
}

// AddAppointment stores a new appointment at the head of the collection.
// The id, scheduledAt and status of the input are ignored: every new
// appointment starts Agendado.
func (s *AppointmentService) AddAppointment(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	a.ID = newID()
	a.ScheduledAt = clock()
	a.Status = domain.StatusScheduled

	defer s.records.lock()()

	appointments, err := s.records.loadAppointments(ctx)
	if err != nil {
		return nil, err
	}
	appointments = append([]domain.Appointment{a}, appointments...)
	if err := s.records.saveAppointments(ctx, appointments); err != nil {
		s.logger.Error().Err(err).Msg("failed to store appointment")
		return nil, err
	}

	s.logger.Info().Str("appointment_id", a.ID).Str("reason", string(a.Reason)).Msg("appointment created")
	return &a, nil
}

// UpdateAppointment replaces the stored appointment with the same id. The
// stored scheduledAt and scheduler are kept. An unknown id changes nothing.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, a domain.Appointment, ifMatch string) (*domain.Appointment, error) {
	defer s.records.lock()()

	appointments, err := s.records.loadAppointments(ctx)
	if err != nil {
		return nil, err
	}

	for i, stored := range appointments {
		if stored.ID != a.ID {
			continue
		}
		if ifMatch != "" && ifMatch != versionOf(stored) {
			return nil, domain.ErrVersionConflict
		}
		a.ScheduledAt = stored.ScheduledAt
		a.SchedulerName = stored.SchedulerName
		a.SchedulerCPF = stored.SchedulerCPF
		appointments[i] = a
		if err := s.records.saveAppointments(ctx, appointments); err != nil {
			return nil, err
		}
		s.logger.Info().Str("appointment_id", a.ID).Str("status", string(a.Status)).Msg("appointment updated")
		return &a, nil
	}

	s.logger.Debug().Str("appointment_id", a.ID).Msg("update of unknown appointment ignored")
	return &a, nil
}

func versioned(in []domain.Appointment) []ports.VersionedAppointment {
	out := make([]ports.VersionedAppointment, len(in))
	for i, a := range in {
		out[i] = ports.VersionedAppointment{Appointment: a, Version: versionOf(a)}
	}
	return out
}
