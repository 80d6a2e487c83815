package handlers

import (
	"net/http"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/application"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/config"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "User registration info"
// @Success 201 {object} response.DataResponse "User registered successfully"
// @Failure 400 {object} response.ErrorResponse "Invalid input or email already in use"
// @Failure 500 {object} response.ErrorResponse "Failed to create user"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindError(c, err)
		return
	}

	usr, err := h.svc.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.DataResponse{Message: "User registered successfully", Data: user.ToDTO(*usr)})
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Failure 500 {object} response.ErrorResponse "Failed to generate token"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindError(c, err)
		return
	}

	usr, token, err := h.svc.Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		int(config.TokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction,
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.ID,
		Username: usr.Username,
		IsAdmin:  application.IsAdmin(usr),
	})
}
