package application

import (
	"context"
	"strings"
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/config"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/audit"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/project"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/ticket"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
	"gorm.io/datatypes"
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

func parseDate(field, value string) (datatypes.Date, error) {
	t, err := time.Parse(config.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return datatypes.Date{}, validationErrorf("invalid %s format, expected YYYY-MM-DD", field)
	}
	return datatypes.Date(t), nil
}

// CreateProject persists the project and assigns its owner in one transaction.
func (s *ProjectService) CreateProject(ctx context.Context, caller *user.User, input project.CreateProjectDTO) (*project.Project, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" || input.StartDate == "" || input.EndDate == "" {
		return nil, newError(ErrValidation, "title, start_date, and end_date are required")
	}
	start, err := parseDate("start_date", input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", input.EndDate)
	if err != nil {
		return nil, err
	}

	p := &project.Project{
		Title:     strings.TrimSpace(input.Title),
		StartDate: start,
		EndDate:   end,
		Status:    project.StatusActive,
		OwnerID:   caller.ID,
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Status != nil && *input.Status != "" {
		p.Status = *input.Status
	}

	var created project.Project
	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := tx.Project.CreateProject(p); err != nil {
			return err
		}
		if err := tx.Project.AddAssignment(caller.ID, p.ID); err != nil {
			return err
		}
		if err := utils.LogAudit(tx.Audit, caller.ID, "create", audit.ResourceProject, audit.ProjectResourceID(p.ID), nil, p, ""); err != nil {
			return err
		}
		created, err = tx.Project.GetProjectByID(p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, caller *user.User, id uint, input project.UpdateProjectDTO) (*project.Project, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}

	var updated project.Project
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		p, err := tx.Project.GetProjectByID(id)
		if err != nil {
			return notFound(err, ErrProjectNotFound)
		}
		before := p

		if input.Title != nil {
			p.Title = *input.Title
		}
		if input.Description != nil {
			p.Description = *input.Description
		}
		if input.Status != nil {
			p.Status = *input.Status
		}
		if input.StartDate != nil {
			if p.StartDate, err = parseDate("start_date", *input.StartDate); err != nil {
				return err
			}
		}
		if input.EndDate != nil {
			if p.EndDate, err = parseDate("end_date", *input.EndDate); err != nil {
				return err
			}
		}

		if err := tx.Project.UpdateProject(&p); err != nil {
			return err
		}
		updated = p
		return utils.LogAudit(tx.Audit, caller.ID, "update", audit.ResourceProject, audit.ProjectResourceID(p.ID), before, p, "")
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AssignUser adds userID to the project's members.
func (s *ProjectService) AssignUser(ctx context.Context, caller *user.User, projectID, userID uint) error {
	if err := RequireAdmin(caller); err != nil {
		return err
	}
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Project.GetProjectByID(projectID); err != nil {
			return notFound(err, ErrProjectNotFound)
		}
		if _, err := tx.User.GetUserByID(userID); err != nil {
			return notFound(err, ErrUserNotFound)
		}
		assigned, err := tx.Project.IsAssigned(userID, projectID)
		if err != nil {
			return err
		}
		if assigned {
			return ErrAlreadyAssigned
		}
		if err := tx.Project.AddAssignment(userID, projectID); err != nil {
			return conflict(err, ErrAlreadyAssigned)
		}
		return utils.LogAudit(tx.Audit, caller.ID, "assign", audit.ResourceProject,
			audit.ProjectResourceID(projectID), nil, project.Assignment{UserID: userID, ProjectID: projectID}, "")
	})
}

// GetProject returns the project with members and tickets if caller may see it.
func (s *ProjectService) GetProject(ctx context.Context, caller *user.User, id uint) (*project.Project, error) {
	repos := s.Repos.WithContext(ctx)
	p, err := repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, notFound(err, ErrProjectNotFound)
	}
	ok, err := CanViewProject(repos, caller, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAssigned
	}
	return &p, nil
}

// ListProjects returns every project for admins and the assigned ones otherwise.
func (s *ProjectService) ListProjects(ctx context.Context, caller *user.User) ([]project.Project, error) {
	repos := s.Repos.WithContext(ctx)
	if IsAdmin(caller) {
		return repos.Project.ListProjects()
	}
	return repos.Project.ListProjectsByUserID(caller.ID)
}

// ListAssignedProjects ignores the admin role.
func (s *ProjectService) ListAssignedProjects(ctx context.Context, caller *user.User) ([]project.Project, error) {
	return s.Repos.WithContext(ctx).Project.ListProjectsByUserID(caller.ID)
}

func (s *ProjectService) ListProjectTickets(ctx context.Context, projectID uint) ([]ticket.Ticket, error) {
	repos := s.Repos.WithContext(ctx)
	if _, err := repos.Project.GetProjectByID(projectID); err != nil {
		return nil, notFound(err, ErrProjectNotFound)
	}
	return repos.Ticket.ListTicketsByProjectID(projectID)
}

func (s *ProjectService) ListProjectUsers(ctx context.Context, projectID uint) ([]user.User, error) {
	repos := s.Repos.WithContext(ctx)
	if _, err := repos.Project.GetProjectByID(projectID); err != nil {
		return nil, notFound(err, ErrProjectNotFound)
	}
	return repos.User.ListUsersByProjectID(projectID)
}
