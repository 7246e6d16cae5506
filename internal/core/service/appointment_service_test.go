package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

func sampleAppointment() domain.Appointment {
	return domain.Appointment{
		ApplicantName:  "Pedro Alves",
		CPF:            "444.444.444-44",
		BirthDate:      "1975-03-02",
		Phone:          "11900000000",
		Address:        "Rua Nova, 10",
		Neighborhood:   "Vila Rica",
		CEP:            "02000-000",
		ReferencePoint: "Ao lado da escola",
		Observations:   "Retorno.",
		Reason:         domain.ReasonDenuncia,
		SchedulerName:  "Maria Souza",
		SchedulerCPF:   "222.222.222-22",
		EquipmentName:  "CRAS Norte",
	}
}

func TestAppointmentService_AddAppointment_ForcesScheduled(t *testing.T) {
	records, _ := seeded(t)
	svc := NewAppointmentService(records, discardLogger)
	ctx := context.Background()

	in := sampleAppointment()
	in.ID = "client-id"
	in.Status = domain.StatusCanceled
	in.ScheduledAt = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	before := clock()
	created, err := svc.AddAppointment(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusScheduled, created.Status)
	assert.NotEqual(t, "client-id", created.ID)
	assert.False(t, created.ScheduledAt.Before(before))
}

func TestAppointmentService_AddAppointment_NewestFirst(t *testing.T) {
	records, _ := seeded(t)
	svc := NewAppointmentService(records, discardLogger)
	ctx := context.Background()

	first, err := svc.AddAppointment(ctx, sampleAppointment())
	require.NoError(t, err)
	second, err := svc.AddAppointment(ctx, sampleAppointment())
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	list, err := svc.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestAppointmentService_RoundTrip(t *testing.T) {
	records, _ := seeded(t)
	svc := NewAppointmentService(records, discardLogger)
	ctx := context.Background()

	created, err := svc.AddAppointment(ctx, sampleAppointment())
	require.NoError(t, err)

	got, err := svc.GetAppointment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, got.Appointment)
	assert.NotEmpty(t, got.Version)
}

func TestAppointmentService_GetAppointment_NotFound(t *testing.T) {
	records, _ := seeded(t)
	_, err := NewAppointmentService(records, discardLogger).GetAppointment(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}

func TestAppointmentService_UpdateAppointment_KeepsScheduledAtAndScheduler(t *testing.T) {
	records, _ := seeded(t)
	svc := NewAppointmentService(records, discardLogger)
	ctx := context.Background()

	stored, err := svc.GetAppointment(ctx, "2")
	require.NoError(t, err)

	change := stored.Appointment
	change.Status = domain.StatusCompleted
	change.VisitorName = "Carlos Andrade"
	change.VisitDate = "2024-06-01"
	change.ScheduledAt = time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)
	change.SchedulerName = "Outra Pessoa"
	change.SchedulerCPF = "999.999.999-99"

	updated, err := svc.UpdateAppointment(ctx, change, stored.Version)
	require.NoError(t, err)
	assert.Equal(t, stored.ScheduledAt, updated.ScheduledAt)
	assert.Equal(t, stored.SchedulerName, updated.SchedulerName)
	assert.Equal(t, stored.SchedulerCPF, updated.SchedulerCPF)

	got, err := svc.GetAppointment(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, "Carlos Andrade", got.VisitorName)
	assert.Equal(t, "2024-06-01", got.VisitDate)
	assert.Equal(t, stored.ScheduledAt, got.ScheduledAt)
}

func TestAppointmentService_UpdateAppointment_UnknownIDIsNoop(t *testing.T) {
	records, store := seeded(t)
	before := rawValue(t, store, ports.KeyAppointments)

	in := sampleAppointment()
	in.ID = "ghost"
	got, err := NewAppointmentService(records, discardLogger).UpdateAppointment(context.Background(), in, "")
	require.NoError(t, err)
	assert.Equal(t, "ghost", got.ID)
	assert.Equal(t, before, rawValue(t, store, ports.KeyAppointments))
}

func TestAppointmentService_UpdateAppointment_VersionConflict(t *testing.T) {
	records, store := seeded(t)
	svc := NewAppointmentService(records, discardLogger)
	ctx := context.Background()

	stored, err := svc.GetAppointment(ctx, "2")
	require.NoError(t, err)

	first := stored.Appointment
	first.Status = domain.StatusCanceled
	_, err = svc.UpdateAppointment(ctx, first, stored.Version)
	require.NoError(t, err)
	before := rawValue(t, store, ports.KeyAppointments)

	second := stored.Appointment
	second.Status = domain.StatusCompleted
	_, err = svc.UpdateAppointment(ctx, second, stored.Version)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	assert.Equal(t, before, rawValue(t, store, ports.KeyAppointments))
}

func TestAppointmentService_SearchAppointments(t *testing.T) {
	records, _ := seeded(t)
	svc := NewAppointmentService(records, discardLogger)
	ctx := context.Background()

	cases := []struct {
		term string
		want []string
	}{
		{"", []string{"1", "2"}},
		{"joão", []string{"1"}},
		{"PEREIRA", []string{"2"}},
		{"333.333", []string{"2"}},
		{"  ana  ", []string{"2"}},
		{"inexistente", nil},
	}
	for _, tc := range cases {
		got, err := svc.SearchAppointments(ctx, tc.term)
		require.NoError(t, err)
		var ids []string
		for _, a := range got {
			ids = append(ids, a.ID)
		}
		assert.Equal(t, tc.want, ids, "term %q", tc.term)
	}
}

func TestAppointmentService_StoreFailure(t *testing.T) {
	svc := NewAppointmentService(NewRecords(brokenStore{}), discardLogger)
	ctx := context.Background()

	_, err := svc.ListAppointments(ctx)
	assert.ErrorIs(t, err, errStoreDown)
	_, err = svc.AddAppointment(ctx, sampleAppointment())
	assert.ErrorIs(t, err, errStoreDown)
}
