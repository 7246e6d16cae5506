package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

// Seeder writes the first-run data set.
type Seeder struct {
	records *Records
	log     zerolog.Logger
}

func NewSeeder(records *Records, log zerolog.Logger) *Seeder {
	return &Seeder{records: records, log: log}
}

// Initialize seeds the user and appointment collections when they are
// absent. Existing data is never overwritten, so calling it again is a no-op.
func (s *Seeder) Initialize(ctx context.Context) error {
	defer s.records.lock()()

	hasUsers, err := s.records.exists(ctx, ports.KeyUsers)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	if !hasUsers {
		users, err := defaultUsers()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		if err := s.records.saveUsers(ctx, users); err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		s.log.Info().Int("count", len(users)).Msg("seeded default users")
	}

	hasAppointments, err := s.records.exists(ctx, ports.KeyAppointments)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	if !hasAppointments {
		appointments := defaultAppointments(clock())
		if err := s.records.saveAppointments(ctx, appointments); err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		s.log.Info().Int("count", len(appointments)).Msg("seeded sample appointments")
	}

	return nil
}

func defaultUsers() ([]userRecord, error) {
	seed := []struct {
		rec      userRecord
		password string
	}{
		{userRecord{ID: "1", Name: "Admin", Email: "admin@cras.com", Role: domain.RoleAdmin}, "admin"},
		{userRecord{ID: "2", Name: "Maria Souza", Email: "maria@cras.com", Role: domain.RoleRegistrar}, "123"},
	}

	users := make([]userRecord, 0, len(seed))
	for _, u := range seed {
		hash, err := hashSecret(u.password)
		if err != nil {
			return nil, fmt.Errorf("hash seed password: %w", err)
		}
		u.rec.PasswordHash = hash
		users = append(users, u.rec)
	}
	return users, nil
}

func defaultAppointments(now time.Time) []domain.Appointment {
	return []domain.Appointment{
		{
			ID:             "1",
			ApplicantName:  "João da Silva",
			CPF:            "111.111.111-11",
			BirthDate:      "1980-05-15",
			Phone:          "11987654321",
			Address:        "Rua das Flores, 123",
			Neighborhood:   "Centro",
			CEP:            "01001-000",
			ReferencePoint: "Próximo à padaria",
			Observations:   "Primeiro contato.",
			Reason:         domain.ReasonInclusaoPBF,
			SchedulerName:  "Maria Souza",
			SchedulerCPF:   "222.222.222-22",
			EquipmentName:  "CRAS Central",
			ScheduledAt:    now.Add(-48 * time.Hour),
			Status:         domain.StatusCompleted,
			VisitorName:    "Carlos Andrade",
			VisitDate:      now.Add(-24 * time.Hour).Format(time.DateOnly),
		},
		{
			ID:             "2",
			ApplicantName:  "Ana Pereira",
			CPF:            "333.333.333-33",
			BirthDate:      "1992-11-20",
			Phone:          "21912345678",
			Address:        "Avenida Principal, 456",
			Neighborhood:   "Zona Sul",
			CEP:            "22000-000",
			ReferencePoint: "Em frente ao mercado",
			Observations:   "Urgente.",
			Reason:         domain.ReasonAtualizacaoBPCLoas,
			SchedulerName:  "Maria Souza",
			SchedulerCPF:   "222.222.222-22",
			EquipmentName:  "CRAS Sul",
			ScheduledAt:    now,
			Status:         domain.StatusScheduled,
		},
	}
}
