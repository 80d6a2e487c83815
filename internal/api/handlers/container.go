package handlers

import (
	"github.com/Piero-Micciulla/project-management-dashboard/internal/application"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
)

type Handlers struct {
	Auth    *AuthHandler
	Audit   *AuditHandler
	Health  *HealthHandler
	Project *ProjectHandler
	Ticket  *TicketHandler
	User    *UserHandler
}

func New(svc *application.Services, repos *repository.Repos) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(svc.Auth),
		Audit:   NewAuditHandler(svc.Audit),
		Health:  NewHealthHandler(repos),
		Project: NewProjectHandler(svc.Project),
		Ticket:  NewTicketHandler(svc.Ticket),
		User:    NewUserHandler(svc.User),
	}
}
