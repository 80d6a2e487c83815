package application

import "github.com/Piero-Micciulla/project-management-dashboard/internal/repository"

type Services struct {
	Auth    *AuthService
	Audit   *AuditService
	Project *ProjectService
	Ticket  *TicketService
	User    *UserService
}

func New(repos *repository.Repos, avatars AvatarStore) *Services {
	return &Services{
		Auth:    NewAuthService(repos),
		Audit:   NewAuditService(repos),
		Project: NewProjectService(repos),
		Ticket:  NewTicketService(repos),
		User:    NewUserService(repos, avatars),
	}
}
