package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/nearbiz/internal/httperr"
	"github.com/BruksfildServices01/nearbiz/internal/infra/repository"
	"github.com/BruksfildServices01/nearbiz/internal/middleware"
	"github.com/BruksfildServices01/nearbiz/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogLister interface {
	List(ctx context.Context, f repository.AuditLogFilter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditLogLister
}

func NewAuditLogsHandler(logs AuditLogLister) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List returns the caller's own audit trail.
func (h *AuditLogsHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Sesión inválida.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filtros opcionales
	// --------------------------------------------------
	filter := repository.AuditLogFilter{
		UserID: userID,
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}
	if from, err := time.Parse(time.DateOnly, c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse(time.DateOnly, c.Query("to")); err == nil {
		filter.To = &to
	}

	logs, total, err := h.logs.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Error al listar la bitácora.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
