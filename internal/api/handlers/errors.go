package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/application"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/response"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var fieldLabels = map[string]string{
	"Username":       "username",
	"Password":       "password",
	"Email":          "email",
	"Title":          "title",
	"Description":    "description",
	"StartDate":      "start_date",
	"EndDate":        "end_date",
	"ProjectID":      "project_id",
	"UserID":         "user_id",
	"AssignedUserID": "assigned_user_id",
}

// respondBindError writes a 400 with friendly messages for validator failures.
func respondBindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
}

// respondError maps service error categories to HTTP status codes.
// Conflicts are reported as 400.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, application.ErrValidation), errors.Is(err, application.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, application.ErrAuth):
		status = http.StatusUnauthorized
	case errors.Is(err, application.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, application.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, application.ErrUpload):
		status = http.StatusInternalServerError
	default:
		log.Printf("Unhandled error on %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}

func invalidID(c *gin.Context, what string) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid " + what + " ID"})
}

// currentUser returns the authenticated caller or writes a 401.
func currentUser(c *gin.Context) (*user.User, bool) {
	u, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return u, true
}
