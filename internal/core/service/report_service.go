package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

// csvHeader is the first line of every exported report.
const csvHeader = "ID,Solicitante,CPF,Data Agendamento,Motivo,Status,Cadastrador da Visita,Data da Visita"

// ReportService aggregates appointments for the dashboard and the report page.
// Calendar days and months are evaluated in loc.
type ReportService struct {
	records *Records
	loc     *time.Location
}

func NewReportService(records *Records, loc *time.Location) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{records: records, loc: loc}
}

// Dashboard counts appointments by status and by month of scheduling.
func (s *ReportService) Dashboard(ctx context.Context) (*ports.DashboardSummary, error) {
	appointments, err := s.records.loadAppointments(ctx)
	if err != nil {
		return nil, err
	}

	sum := &ports.DashboardSummary{Total: len(appointments)}
	months := make(map[string]int)
	for _, a := range appointments {
		switch a.Status {
		case domain.StatusScheduled:
			sum.Scheduled++
		case domain.StatusCompleted:
			sum.Completed++
		case domain.StatusCanceled:
			sum.Canceled++
		}
		months[a.ScheduledAt.In(s.loc).Format("2006-01")]++
	}

	sum.ByMonth = make([]ports.MonthCount, 0, len(months))
	for m, n := range months {
		sum.ByMonth = append(sum.ByMonth, ports.MonthCount{Month: m, Count: n})
	}
	sort.Slice(sum.ByMonth, func(i, j int) bool { return sum.ByMonth[i].Month < sum.ByMonth[j].Month })
	return sum, nil
}

// Filter returns the appointments matching f, in storage order.
func (s *ReportService) Filter(ctx context.Context, f ports.ReportFilter) ([]domain.Appointment, error) {
	appointments, err := s.records.loadAppointments(ctx)
	if err != nil {
		return nil, err
	}

	var from, until time.Time
	if !f.StartDate.IsZero() {
		from = s.dayStart(f.StartDate)
	}
	if !f.EndDate.IsZero() {
		until = s.dayStart(f.EndDate).AddDate(0, 0, 1)
	}
	scheduler := strings.ToLower(strings.TrimSpace(f.Scheduler))

	out := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if !from.IsZero() && a.ScheduledAt.Before(from) {
			continue
		}
		if !until.IsZero() && !a.ScheduledAt.Before(until) {
			continue
		}
		if f.Reason != "" && a.Reason != f.Reason {
			continue
		}
		if scheduler != "" && !strings.Contains(strings.ToLower(a.SchedulerName), scheduler) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// ExportCSV renders the filtered appointments as CSV. Free-text columns are
// always quoted.
func (s *ReportService) ExportCSV(ctx context.Context, f ports.ReportFilter) ([]byte, error) {
	appointments, err := s.Filter(ctx, f)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	for _, a := range appointments {
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			a.ID,
			quote(a.ApplicantName),
			quote(a.CPF),
			a.ScheduledAt.In(s.loc).Format("02/01/2006 15:04:05"),
			string(a.Reason),
			string(a.Status),
			quote(a.VisitorName),
			a.VisitDate,
		}, ","))
	}
	return []byte(b.String()), nil
}

// dayStart reinterprets the calendar date of t in the report location.
func (s *ReportService) dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
