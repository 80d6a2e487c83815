package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/config"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/response"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Auth resolves the authenticated caller into a user record.
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// CurrentUser loads the user named by the token claims so handlers and
// services see the role as stored now, not as it was when the token was issued.
func (a *Auth) CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}

		u, err := a.repos.WithContext(c.Request.Context()).User.GetUserByID(uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
			return
		}

		c.Set(utils.UserKey, &u)
		c.Next()
	}
}

// LoggingMiddleware writes one line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		uid, _ := utils.GetUserIDFromContext(c)
		log.Printf("[HTTP] %s %s status=%d latency=%s uid=%d ip=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			uid,
			c.ClientIP(),
		)
	}
}

// CORSMiddleware allows the configured origin prefixes.
func CORSMiddleware() gin.HandlerFunc {
	origins := config.AllowedOrigins
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, prefix := range origins {
				if strings.HasPrefix(origin, prefix) {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
