package main

import (
	"context"
	"flag"
	"log"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/application"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/config"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/config/db"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/seed"
)

func main() {
	path := flag.String("file", "seed.yaml", "seed file describing users and projects")
	flag.Parse()

	config.LoadConfig()

	f, err := seed.Load(*path)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	db.Init()
	repos := repository.NewRepositories(db.DB)

	// Avatars are not seeded.
	svc := application.New(repos, nil)
	if _, err := seed.Apply(context.Background(), svc, repos, f); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
