package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"health-automation-backend/internal/converter"
	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/domain/entity"
	"health-automation-backend/internal/usecase"
	"health-automation-backend/pkg/response"
	"health-automation-backend/pkg/validator"
)

// ProfileHandler serves GET, POST (upsert) and DELETE for one profile kind.
type ProfileHandler[P any, R any] struct {
	label          string
	profileUsecase usecase.ProfileUsecase[P]
	validator      *validator.CustomValidator
	newRequest     func() dto.ProfileRequest
	toResponse     func(*P) *R
}

func NewPatientHandler(profileUsecase usecase.ProfileUsecase[entity.PatientProfile], validator *validator.CustomValidator) *ProfileHandler[entity.PatientProfile, dto.PatientProfileResponse] {
	return &ProfileHandler[entity.PatientProfile, dto.PatientProfileResponse]{
		label:          "Patient",
		profileUsecase: profileUsecase,
		validator:      validator,
		newRequest:     func() dto.ProfileRequest { return &dto.PatientProfileRequest{} },
		toResponse:     converter.PatientProfileToResponse,
	}
}

func NewDoctorHandler(profileUsecase usecase.ProfileUsecase[entity.DoctorProfile], validator *validator.CustomValidator) *ProfileHandler[entity.DoctorProfile, dto.DoctorProfileResponse] {
	return &ProfileHandler[entity.DoctorProfile, dto.DoctorProfileResponse]{
		label:          "Doctor",
		profileUsecase: profileUsecase,
		validator:      validator,
		newRequest:     func() dto.ProfileRequest { return &dto.DoctorProfileRequest{} },
		toResponse:     converter.DoctorProfileToResponse,
	}
}

func NewEmployeeHandler(profileUsecase usecase.ProfileUsecase[entity.EmployeeProfile], validator *validator.CustomValidator) *ProfileHandler[entity.EmployeeProfile, dto.EmployeeProfileResponse] {
	return &ProfileHandler[entity.EmployeeProfile, dto.EmployeeProfileResponse]{
		label:          "Employee",
		profileUsecase: profileUsecase,
		validator:      validator,
		newRequest:     func() dto.ProfileRequest { return &dto.EmployeeProfileRequest{} },
		toResponse:     converter.EmployeeProfileToResponse,
	}
}

func (h *ProfileHandler[P, R]) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	profile, err := h.profileUsecase.Get(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, fmt.Sprintf("Failed to get %s profile", h.label))
		return
	}
	if profile == nil {
		response.NotFound(w, fmt.Sprintf("%s profile not found", h.label))
		return
	}

	response.Success(w, http.StatusOK, fmt.Sprintf("%s profile retrieved successfully", h.label), h.toResponse(profile))
}

// Upsert creates the profile or merges the supplied fields into it.
func (h *ProfileHandler[P, R]) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	req := h.newRequest()
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	fields, err := req.Fields()
	if err != nil {
		response.BadRequest(w, usecase.ErrInvalidDate.Error())
		return
	}

	profile, err := h.profileUsecase.Upsert(r.Context(), userID, fields)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrDuplicateIdentity:
			response.Conflict(w, "Aadhar or PAN number already exists")
		default:
			response.InternalServerError(w, fmt.Sprintf("Failed to save %s profile", h.label))
		}
		return
	}

	response.Success(w, http.StatusOK, fmt.Sprintf("%s profile saved successfully", h.label), h.toResponse(profile))
}

func (h *ProfileHandler[P, R]) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	deleted, err := h.profileUsecase.Delete(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, fmt.Sprintf("Failed to delete %s profile", h.label))
		return
	}
	if !deleted {
		response.NotFound(w, fmt.Sprintf("%s profile not found", h.label))
		return
	}

	response.Success(w, http.StatusOK, fmt.Sprintf("%s profile deleted successfully", h.label), nil)
}

func (h *ProfileHandler[P, R]) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	return pathID(w, r, "userId", "user")
}
