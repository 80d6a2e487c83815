package routes

import (
	"github.com/Piero-Micciulla/project-management-dashboard/docs"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/api/handlers"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/api/middleware"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/application"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts the API under /api on r.
func RegisterRoutes(r *gin.Engine, repos *repository.Repos, avatars application.AvatarStore) {
	services_instance := application.New(repos, avatars)
	handlers_instance := handlers.New(services_instance, repos)
	authMiddleware := middleware.NewAuth(repos)

	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/health", handlers_instance.Health.Health)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", handlers_instance.Auth.Register)
		authGroup.POST("/login", handlers_instance.Auth.Login)
	}

	auth := api.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(), authMiddleware.CurrentUser())
	{
		projects := auth.Group("/projects")
		{
			projects.GET("", handlers_instance.Project.GetProjects)
			projects.GET("/assigned", handlers_instance.Project.GetAssignedProjects)
			projects.GET("/:id", handlers_instance.Project.GetProjectByID)
			projects.GET("/:id/tickets", handlers_instance.Project.GetProjectTickets)
			projects.GET("/:id/users", handlers_instance.Project.GetProjectUsers)
			projects.POST("", handlers_instance.Project.CreateProject)
			projects.PUT("/:id", handlers_instance.Project.UpdateProject)
			projects.POST("/:id/assign", handlers_instance.Project.AssignUser)
		}

		tickets := auth.Group("/tickets")
		{
			tickets.GET("/user", handlers_instance.Ticket.GetMyTickets)
			tickets.POST("", handlers_instance.Ticket.CreateTicket)
			tickets.PUT("/:id", handlers_instance.Ticket.UpdateTicket)
			tickets.DELETE("/:id", handlers_instance.Ticket.DeleteTicket)
			tickets.GET("/:id/history", handlers_instance.Ticket.GetTicketHistory)
		}

		users := auth.Group("/users")
		{
			users.GET("/me", handlers_instance.User.GetMe)
			users.PUT("/me", handlers_instance.User.UpdateMe)
			users.DELETE("/me", handlers_instance.User.DeleteMe)
			users.POST("/me/avatar", handlers_instance.User.UploadMyAvatar)
			users.GET("", handlers_instance.User.ListUsers)
			users.GET("/:id", handlers_instance.User.GetUserByID)
			users.PUT("/:id", handlers_instance.User.UpdateUser)
			users.DELETE("/:id", handlers_instance.User.DeleteUser)
			users.POST("/:id/avatar", handlers_instance.User.UploadUserAvatar)
		}

		auth.GET("/audit/logs", handlers_instance.Audit.GetAuditLogs)
	}
}
