package handlers

import (
	"net/http"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/application"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/response"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary Query admin activity
// @Description Entries are returned newest first. project_id and target_user_id
// @Description select entries about that project or user account and take
// @Description precedence over resource_type.
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query int false "Actor user ID"
// @Param resource_type query string false "Resource type, e.g. project or user"
// @Param action query string false "Action, e.g. create, update, delete"
// @Param project_id query int false "Entries about this project"
// @Param target_user_id query int false "Entries about this user account"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} audit.AuditLog
// @Failure 400 {object} response.ErrorResponse "Invalid query parameter"
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}

	params := repository.AuditQueryParams{
		ResourceType: utils.OptionalQuery(c, "resource_type"),
		Action:       utils.OptionalQuery(c, "action"),
	}
	for _, name := range []string{"user_id", "project_id", "target_user_id", "limit"} {
		v, err := utils.ParseQueryUintParam(c, name)
		if err == utils.ErrEmptyParameter {
			continue
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid " + name})
			return
		}
		switch name {
		case "user_id":
			params.UserID = &v
		case "project_id":
			params = params.ForProject(v)
		case "target_user_id":
			params = params.ForTargetUser(v)
		case "limit":
			params.Limit = int(v)
		}
	}

	logs, err := h.svc.QueryAuditLogs(c.Request.Context(), caller, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
