package handlers

import (
	"net/http"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/application"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/response"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
	"github.com/gin-gonic/gin"
)

const avatarFormField = "avatar"

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetMe godoc
// @Summary Current user's profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.UserDTO
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(*caller))
}

// UpdateMe godoc
// @Summary Update the current user's profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.UpdateProfileInput true "Fields to change"
// @Success 200 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input or duplicate email/username"
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	var input user.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.svc.UpdateProfile(c.Request.Context(), caller, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Message: "Profile updated successfully", Data: user.ToDTO(*u)})
}

// DeleteMe godoc
// @Summary Delete the current user's account
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteSelf(c.Request.Context(), caller); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Account deleted successfully"})
}

// UploadMyAvatar godoc
// @Summary Upload the current user's avatar
// @Tags users
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image (jpg, jpeg, png, gif)"
// @Success 200 {object} response.AvatarResponse
// @Failure 400 {object} response.ErrorResponse "Unsupported file type"
// @Failure 500 {object} response.ErrorResponse "Upload failed"
// @Router /users/me/avatar [post]
func (h *UserHandler) UploadMyAvatar(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	h.uploadAvatar(c, caller, caller.ID)
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.UserDTO
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	users, err := h.svc.ListUsers(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTOs(users))
}

// GetUserByID godoc
// @Summary Get a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} user.UserDTO
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "user")
		return
	}
	if err := application.RequireAdmin(caller); err != nil {
		respondError(c, err)
		return
	}
	u, err := h.svc.GetUser(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(*u))
}

// UpdateUser godoc
// @Summary Update any user, including the role
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.AdminUpdateInput true "Fields to change"
// @Success 200 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse "Invalid role provided"
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "user")
		return
	}
	if err := application.RequireAdmin(caller); err != nil {
		respondError(c, err)
		return
	}
	var input user.AdminUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.svc.UpdateUser(c.Request.Context(), caller, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Message: "User updated successfully", Data: user.ToDTO(*u)})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Admins cannot delete their own account"
// @Failure 403 {object} response.ErrorResponse "Admin access required"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "user")
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted successfully"})
}

// UploadUserAvatar godoc
// @Summary Upload an avatar on behalf of a user
// @Tags users
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "User ID"
// @Param avatar formData file true "Image (jpg, jpeg, png, gif)"
// @Success 200 {object} response.AvatarResponse
// @Failure 400 {object} response.ErrorResponse "Unsupported file type"
// @Failure 403 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse "Upload failed"
// @Router /users/{id}/avatar [post]
func (h *UserHandler) UploadUserAvatar(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "user")
		return
	}
	h.uploadAvatar(c, caller, id)
}

func (h *UserHandler) uploadAvatar(c *gin.Context, caller *user.User, targetID uint) {
	fileHeader, err := c.FormFile(avatarFormField)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "No file provided"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	u, err := h.svc.UploadAvatar(c.Request.Context(), caller, targetID, fileHeader.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	avatar := ""
	if u.Avatar != nil {
		avatar = *u.Avatar
	}
	c.JSON(http.StatusOK, response.AvatarResponse{Message: "Avatar uploaded successfully", Avatar: avatar})
}
