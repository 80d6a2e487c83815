package testutils

import (
	"github.com/Piero-Micciulla/project-management-dashboard/internal/api/middleware"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/api/routes"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/application"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/config"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"github.com/gin-gonic/gin"
)

const TestSecret = "test-secret-key"

// SetupRouter builds the API on top of repos with a fixed signing key.
func SetupRouter(repos *repository.Repos, avatars application.AvatarStore) *gin.Engine {
	config.JwtSecret = TestSecret
	middleware.Init()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, repos, avatars)
	return r
}
