package handler

import (
	"net/http"

	"procurement/internal/service"
	"procurement/pkg/pagination"
	"procurement/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/audit", h.GetAuditLogs)
}

// @Summary      List audit log entries
// @Description  Returns audit entries newest first
// @Tags         Audit
// @Produce      json
// @Param        page  query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200 {object} response.Response
// @Router       /api/audit [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := pagination.Parse(c)
	logs, total := h.auditService.GetAuditLogs(params.Page, params.Limit)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"items": logs,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}
