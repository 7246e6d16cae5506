package handler

import (
	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

// placeholderSchedulerCPF is recorded as the scheduler CPF; staff accounts
// do not carry one.
const placeholderSchedulerCPF = "000.000.000-00"

// --- Request → Domain ---

// toAppointment never takes the scheduler from the request: new records are
// filed under the session user.
func toAppointment(req createAppointmentRequest, session *domain.User) domain.Appointment {
	a := domain.Appointment{
		ApplicantName:  req.ApplicantName,
		CPF:            req.CPF,
		BirthDate:      req.BirthDate,
		Phone:          req.Phone,
		Address:        req.Address,
		Neighborhood:   req.Neighborhood,
		CEP:            req.CEP,
		ReferencePoint: req.ReferencePoint,
		Observations:   req.Observations,
		Reason:         domain.Reason(req.Reason),
		EquipmentName:  req.EquipmentName,
	}
	if session != nil {
		a.SchedulerName = session.Name
		a.SchedulerCPF = placeholderSchedulerCPF
	}
	return a
}

func toUpdatedAppointment(id string, req updateAppointmentRequest) domain.Appointment {
	a := toAppointment(req.createAppointmentRequest, nil)
	a.ID = id
	a.Status = domain.AppointmentStatus(req.Status)
	a.VisitorName = req.VisitorName
	a.VisitDate = req.VisitDate
	return a
}

// --- Service → Response ---

func toAppointmentResponses(in []ports.VersionedAppointment) []appointmentResponse {
	out := make([]appointmentResponse, len(in))
	for i, a := range in {
		out[i] = appointmentResponse{Appointment: a.Appointment, Version: a.Version}
	}
	return out
}
