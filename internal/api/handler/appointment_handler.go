package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cras-office/agenda/internal/api/metrics"
	"github.com/cras-office/agenda/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointment operations.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// List handles GET /v1/appointments, newest first. q filters by applicant
// name or CPF.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Applicant name or CPF"
// @Success      200  {array}   appointmentResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.service.SearchAppointments(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponses(appointments))
}

// Get handles GET /v1/appointments/:id. The ETag header carries the version
// to send back in If-Match.
//
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	a, err := h.service.GetAppointment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	setETag(c, a.Version)
	return c.JSON(http.StatusOK, appointmentResponse{Appointment: a.Appointment, Version: a.Version})
}

// Create handles POST /v1/appointments. Every new appointment starts
// Agendado; the scheduler defaults to the session user.
//
// @Summary      Create an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := h.service.AddAppointment(c.Request().Context(), toAppointment(req, session))
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.WithLabelValues(string(created.Reason)).Inc()
	return c.JSON(http.StatusCreated, appointmentResponse{Appointment: *created})
}

// Update handles PUT /v1/appointments/:id. The stored scheduledAt is kept and
// an unknown id changes nothing.
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string                    true   "Appointment id"
// @Param        If-Match  header    string                    false  "Expected version"
// @Param        body      body      updateAppointmentRequest  true   "Full appointment"
// @Success      200       {object}  appointmentResponse
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      412       {object}  map[string]string
// @Router       /v1/appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	updated, err := h.service.UpdateAppointment(c.Request().Context(), toUpdatedAppointment(c.Param("id"), req), ifMatch(c))
	if err != nil {
		return err
	}

	metrics.AppointmentUpdatesTotal.WithLabelValues(string(updated.Status)).Inc()
	return c.JSON(http.StatusOK, appointmentResponse{Appointment: *updated})
}
