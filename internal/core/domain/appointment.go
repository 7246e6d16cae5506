package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Agendado"
	StatusCompleted AppointmentStatus = "Concluído"
	StatusCanceled  AppointmentStatus = "Cancelado"
)

// Statuses lists every status in display order.
var Statuses = []AppointmentStatus{StatusScheduled, StatusCompleted, StatusCanceled}

// Valid reports whether s is a known status.
func (s AppointmentStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Reason is the category explaining why an appointment was requested.
type Reason string

const (
	ReasonInclusaoPBF         Reason = "INCLUSÃO PBF"
	ReasonAtualizacaoPBF      Reason = "ATUALIZAÇÃO PBF"
	ReasonAtualizacaoBPCLoas  Reason = "ATUALIZAÇÃO BPC LOAS"
	ReasonInclusaoLoas        Reason = "INCLUSÃO PARA O LOAS"
	ReasonApenasAtualizacao   Reason = "APENAS ATUALIZAÇÃO"
	ReasonMudancaRespFamiliar Reason = "MUDANÇA DE RESP. FAMILIAR"
	ReasonContradicaoDiscurso Reason = "CONTRADIÇÃO NO DISCURSO"
	ReasonDenuncia            Reason = "DENÚNCIA"
)

// Reasons lists every reason in display order.
var Reasons = []Reason{
	ReasonInclusaoPBF,
	ReasonAtualizacaoPBF,
	ReasonAtualizacaoBPCLoas,
	ReasonInclusaoLoas,
	ReasonApenasAtualizacao,
	ReasonMudancaRespFamiliar,
	ReasonContradicaoDiscurso,
	ReasonDenuncia,
}

// Valid reports whether r is a known reason.
func (r Reason) Valid() bool {
	for _, known := range Reasons {
		if r == known {
			return true
		}
	}
	return false
}

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrVersionConflict     = errors.New("record was modified by another request")
)

// Appointment is a scheduled visit request from a citizen. Field names in
// JSON match the layout already persisted by earlier builds.
type Appointment struct {
	ID             string `json:"id"`
	ApplicantName  string `json:"applicantName"`
	CPF            string `json:"cpf"`
	BirthDate      string `json:"birthDate"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Neighborhood   string `json:"neighborhood"`
	CEP            string `json:"cep"`
	ReferencePoint string `json:"referencePoint"`
	Observations   string `json:"observations"`
	Reason         Reason `json:"reason"`

	SchedulerName string `json:"schedulerName"`
	SchedulerCPF  string `json:"schedulerCpf"`
	EquipmentName string `json:"equipmentName"`

	ScheduledAt time.Time         `json:"scheduledAt"`
	Status      AppointmentStatus `json:"status"`

	// Set once the home visit has happened.
	VisitorName string `json:"visitorName,omitempty"`
	VisitDate   string `json:"visitDate,omitempty"`
}
