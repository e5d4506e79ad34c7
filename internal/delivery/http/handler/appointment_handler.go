package handler

import (
	"encoding/json"
	"net/http"

	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/usecase"
	"health-automation-backend/pkg/response"
	"health-automation-backend/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create handles appointment creation
// @Summary Create appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrReferenceNotFound:
			response.NotFound(w, "Patient or doctor not found")
		case usecase.ErrInvalidDateTime:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// Get handles getting an appointment by ID
// @Summary Get appointment by ID
// @Tags Appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "appointment")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// Today handles listing the current day's appointments
// @Summary Today's appointments
// @Description Appointments of the current day in the server timezone, with patient and doctor names
// @Tags Appointments
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments/today [get]
func (h *AppointmentHandler) Today(w http.ResponseWriter, r *http.Request) {
	appointments := []dto.TodayAppointmentResponse{}
	for appointment, err := range h.appointmentUsecase.Today(r.Context()) {
		if err != nil {
			response.InternalServerError(w, "Failed to get today's appointments")
			return
		}
		appointments = append(appointments, appointment)
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
