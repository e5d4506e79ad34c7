package handler

import (
	"encoding/json"
	"net/http"

	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/usecase"
	"health-automation-backend/pkg/response"
	"health-automation-backend/pkg/validator"
)

type InvestigationHandler struct {
	investigationUsecase usecase.InvestigationUsecase
	validator            *validator.CustomValidator
}

func NewInvestigationHandler(investigationUsecase usecase.InvestigationUsecase, validator *validator.CustomValidator) *InvestigationHandler {
	return &InvestigationHandler{
		investigationUsecase: investigationUsecase,
		validator:            validator,
	}
}

// Create handles investigation creation
// @Summary Create a new investigation
// @Tags Investigations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateInvestigationRequest true "Create Investigation Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/investigations [post]
func (h *InvestigationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvestigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	investigation, err := h.investigationUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create investigation")
		return
	}

	response.Success(w, http.StatusCreated, "Investigation created successfully", investigation)
}

// GetAll handles getting all investigations
// @Summary Get all investigations
// @Description Get all investigations with pagination
// @Tags Investigations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /investigations [get]
func (h *InvestigationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r, 10)

	investigations, total, err := h.investigationUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get investigations")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Investigations retrieved successfully", investigations, pageMeta(page, limit, total))
}

// GetByID handles getting an investigation by ID
// @Summary Get investigation by ID
// @Tags Investigations
// @Produce json
// @Param id path int true "Investigation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /investigations/{id} [get]
func (h *InvestigationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "investigation")
	if !ok {
		return
	}

	investigation, err := h.investigationUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrInvestigationNotFound:
			response.NotFound(w, "Investigation not found")
		default:
			response.InternalServerError(w, "Failed to get investigation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Investigation retrieved successfully", investigation)
}

// Update handles investigation update
// @Summary Update an investigation
// @Tags Investigations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Investigation ID"
// @Param request body dto.UpdateInvestigationRequest true "Update Investigation Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/investigations/{id} [put]
func (h *InvestigationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "investigation")
	if !ok {
		return
	}

	var req dto.UpdateInvestigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	investigation, err := h.investigationUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvestigationNotFound:
			response.NotFound(w, "Investigation not found")
		default:
			response.InternalServerError(w, "Failed to update investigation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Investigation updated successfully", investigation)
}

// Delete handles investigation deletion
// @Summary Delete an investigation
// @Tags Investigations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Investigation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/investigations/{id} [delete]
func (h *InvestigationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "investigation")
	if !ok {
		return
	}

	if err := h.investigationUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrInvestigationNotFound:
			response.NotFound(w, "Investigation not found")
		default:
			response.InternalServerError(w, "Failed to delete investigation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Investigation deleted successfully", nil)
}

// pagination reads page and limit query params, falling back to page 1.
