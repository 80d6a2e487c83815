package handlers

import (
	"net/http"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/application"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/project"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/ticket"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/response"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// GetProjects godoc
// @Summary List visible projects
// @Description Admins receive every project, other users only those they are assigned to.
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} project.ProjectDTO
// @Failure 401 {object} response.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	projects, err := h.svc.ListProjects(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project.ToDTOs(projects))
}

// GetAssignedProjects godoc
// @Summary List projects the caller is assigned to
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} project.ProjectDTO
// @Router /projects/assigned [get]
func (h *ProjectHandler) GetAssignedProjects(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	projects, err := h.svc.ListAssignedProjects(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project.ToDTOs(projects))
}

// GetProjectByID godoc
// @Summary Get project details
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} project.ProjectDTO
// @Failure 403 {object} response.ErrorResponse "Not assigned"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "project")
		return
	}
	p, err := h.svc.GetProject(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project.ToDTO(*p))
}

// GetProjectTickets godoc
// @Summary List tickets of a project
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} ticket.TicketDTO
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id}/tickets [get]
func (h *ProjectHandler) GetProjectTickets(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "project")
		return
	}
	tickets, err := h.svc.ListProjectTickets(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket.ToDTOs(tickets))
}

// GetProjectUsers godoc
// @Summary List users assigned to a project
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} user.UserDTO
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id}/users [get]
func (h *ProjectHandler) GetProjectUsers(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "project")
		return
	}
	users, err := h.svc.ListProjectUsers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTOs(users))
}

// CreateProject godoc
// @Summary Create a project
// @Description The creator becomes the owner and is assigned to the project.
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body project.CreateProjectDTO true "Project"
// @Success 201 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	if err := application.RequireAdmin(caller); err != nil {
		respondError(c, err)
		return
	}
	var input project.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.svc.CreateProject(c.Request.Context(), caller, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.DataResponse{
		Message: "Project created and assigned successfully",
		Data:    project.ToDTO(*p),
	})
}

// UpdateProject godoc
// @Summary Update a project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param input body project.UpdateProjectDTO true "Fields to change"
// @Success 200 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "project")
		return
	}
	if err := application.RequireAdmin(caller); err != nil {
		respondError(c, err)
		return
	}
	var input project.UpdateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.svc.UpdateProject(c.Request.Context(), caller, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Message: "Project updated successfully", Data: project.ToDTO(*p)})
}

// AssignUser godoc
// @Summary Assign a user to a project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param input body project.AssignUserDTO true "User to assign"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Already assigned"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "User or project not found"
// @Router /projects/{id}/assign [post]
func (h *ProjectHandler) AssignUser(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "project")
		return
	}
	if err := application.RequireAdmin(caller); err != nil {
		respondError(c, err)
		return
	}
	var input project.AssignUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.svc.AssignUser(c.Request.Context(), caller, id, input.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User assigned to project successfully"})
}
