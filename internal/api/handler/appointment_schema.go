package handler

import "github.com/cras-office/agenda/internal/core/domain"

// --- Request / Response types ---

type createAppointmentRequest struct {
	ApplicantName  string `json:"applicantName"  validate:"required"`
	CPF            string `json:"cpf"            validate:"required"`
	BirthDate      string `json:"birthDate"      validate:"required,datetime=2006-01-02"`
	Phone          string `json:"phone"          validate:"required"`
	Address        string `json:"address"        validate:"required"`
	Neighborhood   string `json:"neighborhood"   validate:"required"`
	CEP            string `json:"cep"            validate:"required"`
	ReferencePoint string `json:"referencePoint"`
	Observations   string `json:"observations"`
	Reason         string `json:"reason"         validate:"required,reason"`
	EquipmentName  string `json:"equipmentName"  validate:"required"`
}

// updateAppointmentRequest carries the whole record; it replaces the stored
// one except for scheduledAt and the scheduler.
type updateAppointmentRequest struct {
	createAppointmentRequest
	Status      string `json:"status"      validate:"required,status"`
	VisitorName string `json:"visitorName"`
	VisitDate   string `json:"visitDate"   validate:"omitempty,datetime=2006-01-02"`
}

type appointmentResponse struct {
	domain.Appointment
	Version string `json:"version,omitempty"`
}
