package application

import (
	"context"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/audit"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, caller *user.User, params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}
	return s.Repos.WithContext(ctx).Audit.GetAuditLogs(params)
}
