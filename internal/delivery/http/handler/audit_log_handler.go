package handler

import (
	"net/http"
	"strconv"

	"health-records-backend/internal/usecase"
	"health-records-backend/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	logs, total, err := h.auditLogUsecase.GetAuditLogs(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", logs, &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}
