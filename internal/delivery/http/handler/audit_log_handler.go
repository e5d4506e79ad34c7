package handler

import (
	"errors"
	"net/http"

	"health-automation-backend/internal/usecase"
	"health-automation-backend/pkg/response"
)

const defaultAuditPageSize = 20

// AuditLogHandler serves the admin read side of the audit trail.
type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "audit log")
	if !ok {
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

// GetAllAuditLogs lists the trail newest first. ?action= narrows it to one
// audit action, e.g. user.delete.
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r, defaultAuditPageSize)
	action := r.URL.Query().Get("action")

	auditLogs, total, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), action, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs, pageMeta(page, limit, total))
}
