package utils

import (
	"errors"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	ClaimsKey = "claims"
	UserKey   = "user"
)

// HashPassword is a variable so tests can swap in a cheaper cost.
var HashPassword = func(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claimsVal, exists := c.Get(ClaimsKey)
	if !exists {
		return 0, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return 0, errors.New("invalid user claims type")
	}

	return claims.UserID, nil
}

// GetCurrentUser returns the caller record loaded by the authentication middleware.
func GetCurrentUser(c *gin.Context) (*user.User, error) {
	val, exists := c.Get(UserKey)
	if !exists {
		return nil, errors.New("current user not found in context")
	}
	u, ok := val.(*user.User)
	if !ok || u == nil {
		return nil, errors.New("invalid current user type")
	}
	return u, nil
}
