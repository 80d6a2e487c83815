package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/api/middleware"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/api/routes"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/config"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/config/db"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/storage"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/obs"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer := obs.InitTracer(ctx, config.ServiceName, config.OtelEndpoint)

	// Initialize database connection and migrate schemas
	db.Init()

	minioClient, err := storage.NewMinioClient(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}
	avatars := storage.NewAvatarStore(minioClient, config.MinioBucket, config.MinioPublicURL, config.AvatarSize)

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.Tracing())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, repository.NewRepositories(db.DB), avatars)

	srv := &http.Server{
		Addr:    ":" + config.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("Tracer shutdown error: %v", err)
	}
}
