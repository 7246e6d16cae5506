package ports

import (
	"context"
	"time"

	"github.com/cras-office/agenda/internal/core/domain"
)

// VersionedAppointment is an appointment together with its content version.
type VersionedAppointment struct {
	domain.Appointment
	Version string
}

// AppointmentService schedules and tracks appointments.
type AppointmentService interface {
	// ListAppointments returns appointments newest first.
	ListAppointments(ctx context.Context) ([]VersionedAppointment, error)
	// SearchAppointments filters by applicant name (case-insensitive) or CPF.
	SearchAppointments(ctx context.Context, term string) ([]VersionedAppointment, error)
	GetAppointment(ctx context.Context, id string) (*VersionedAppointment, error)
	AddAppointment(ctx context.Context, a domain.Appointment) (*domain.Appointment, error)
	// UpdateAppointment replaces the stored record with the same ID. ifMatch,
	// when non-empty, must equal the stored version.
	UpdateAppointment(ctx context.Context, a domain.Appointment, ifMatch string) (*domain.Appointment, error)
}

// ReportFilter narrows the appointments included in a report. Zero values
// disable the corresponding filter.
type ReportFilter struct {
	StartDate time.Time // inclusive calendar day
	EndDate   time.Time // inclusive calendar day
	Reason    domain.Reason
	Scheduler string // case-insensitive substring of the scheduler name
}

// MonthCount is the number of appointments scheduled within a month.
type MonthCount struct {
	Month string // YYYY-MM
	Count int
}

// DashboardSummary holds the headline numbers of the dashboard.
type DashboardSummary struct {
	Total     int
	Scheduled int
	Completed int
	Canceled  int
	ByMonth   []MonthCount
}

// ReportService aggregates appointments for the dashboard and reports.
type ReportService interface {
	Dashboard(ctx context.Context) (*DashboardSummary, error)
	Filter(ctx context.Context, f ReportFilter) ([]domain.Appointment, error)
	ExportCSV(ctx context.Context, f ReportFilter) ([]byte, error)
}
