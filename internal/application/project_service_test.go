package application

import (
	"context"
	"testing"
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/project"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/ticket"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProjectService_Create(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewProjectService(repos)
	ctx := context.Background()

	t.Run("non-admin is rejected", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, regularUser(2), project.CreateProjectDTO{
			Title: "P1", StartDate: "2025-01-01", EndDate: "2025-02-01",
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, adminUser(), project.CreateProjectDTO{Title: "P1"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, adminUser(), project.CreateProjectDTO{
			Title: "P1", StartDate: "01/01/2025", EndDate: "2025-02-01",
		})
		require.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "start_date")
	})

	t.Run("creates project and owner assignment", func(t *testing.T) {
		var stored project.Project
		gomock.InOrder(
			m.Project.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
				p.ID = 10
				stored = *p
				return nil
			}),
			m.Project.EXPECT().AddAssignment(uint(1), uint(10)).Return(nil),
			m.Audit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil),
			m.Project.EXPECT().GetProjectByID(uint(10)).DoAndReturn(func(id uint) (project.Project, error) {
				stored.AssignedUsers = []user.User{*adminUser()}
				return stored, nil
			}),
		)

		p, err := svc.CreateProject(ctx, adminUser(), project.CreateProjectDTO{
			Title: "P1", StartDate: "2025-01-01", EndDate: "2025-02-01",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(10), p.ID)
		assert.Equal(t, uint(1), p.OwnerID)
		assert.Equal(t, project.StatusActive, p.Status)
		assert.Equal(t, "2025-01-01", time.Time(p.StartDate).Format("2006-01-02"))
		require.Len(t, p.AssignedUsers, 1)
		assert.Equal(t, uint(1), p.AssignedUsers[0].ID)
	})

	t.Run("assignment failure aborts create", func(t *testing.T) {
		m.Project.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			p.ID = 11
			return nil
		})
		m.Project.EXPECT().AddAssignment(uint(1), uint(11)).Return(gorm.ErrInvalidDB)

		_, err := svc.CreateProject(ctx, adminUser(), project.CreateProjectDTO{
			Title: "P2", StartDate: "2025-01-01", EndDate: "2025-02-01",
		})
		assert.Error(t, err)
	})
}

func TestProjectService_Assign(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewProjectService(repos)
	ctx := context.Background()

	t.Run("non-admin is rejected", func(t *testing.T) {
		err := svc.AssignUser(ctx, regularUser(2), 10, 3)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("project not found", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(99)).Return(project.Project{}, gorm.ErrRecordNotFound)
		err := svc.AssignUser(ctx, adminUser(), 99, 3)
		assert.Equal(t, ErrProjectNotFound, err)
	})

	t.Run("user not found", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
		m.User.EXPECT().GetUserByID(uint(99)).Return(user.User{}, gorm.ErrRecordNotFound)
		err := svc.AssignUser(ctx, adminUser(), 10, 99)
		assert.Equal(t, ErrUserNotFound, err)
	})

	t.Run("already assigned", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
		m.User.EXPECT().GetUserByID(uint(3)).Return(user.User{ID: 3}, nil)
		m.Project.EXPECT().IsAssigned(uint(3), uint(10)).Return(true, nil)
		err := svc.AssignUser(ctx, adminUser(), 10, 3)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("concurrent insert surfaces as conflict", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
		m.User.EXPECT().GetUserByID(uint(3)).Return(user.User{ID: 3}, nil)
		m.Project.EXPECT().IsAssigned(uint(3), uint(10)).Return(false, nil)
		m.Project.EXPECT().AddAssignment(uint(3), uint(10)).Return(gorm.ErrDuplicatedKey)
		err := svc.AssignUser(ctx, adminUser(), 10, 3)
		assert.Equal(t, ErrAlreadyAssigned, err)
	})

	t.Run("success", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
		m.User.EXPECT().GetUserByID(uint(3)).Return(user.User{ID: 3}, nil)
		m.Project.EXPECT().IsAssigned(uint(3), uint(10)).Return(false, nil)
		m.Project.EXPECT().AddAssignment(uint(3), uint(10)).Return(nil)
		m.Audit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)
		assert.NoError(t, svc.AssignUser(ctx, adminUser(), 10, 3))
	})
}

func TestProjectService_Update(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewProjectService(repos)
	ctx := context.Background()

	existing := project.Project{ID: 10, Title: "Old", Description: "keep", Status: "active"}

	t.Run("sparse patch", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(10)).Return(existing, nil)
		m.Project.EXPECT().UpdateProject(gomock.Any()).Return(nil)
		m.Audit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

		p, err := svc.UpdateProject(ctx, adminUser(), 10, project.UpdateProjectDTO{
			Title:   ptrString("New"),
			EndDate: ptrString("2025-06-30"),
		})
		require.NoError(t, err)
		assert.Equal(t, "New", p.Title)
		assert.Equal(t, "keep", p.Description)
		assert.Equal(t, "2025-06-30", time.Time(p.EndDate).Format("2006-01-02"))
	})

	t.Run("malformed end_date", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(10)).Return(existing, nil)
		_, err := svc.UpdateProject(ctx, adminUser(), 10, project.UpdateProjectDTO{EndDate: ptrString("June")})
		require.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "end_date")
	})

	t.Run("not found", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(99)).Return(project.Project{}, gorm.ErrRecordNotFound)
		_, err := svc.UpdateProject(ctx, adminUser(), 99, project.UpdateProjectDTO{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		_, err := svc.UpdateProject(ctx, regularUser(2), 10, project.UpdateProjectDTO{})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestProjectService_Visibility(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewProjectService(repos)
	ctx := context.Background()

	all := []project.Project{{ID: 1}, {ID: 2}}
	mine := []project.Project{{ID: 2}}

	t.Run("admin lists every project", func(t *testing.T) {
		m.Project.EXPECT().ListProjects().Return(all, nil)
		got, err := svc.ListProjects(ctx, adminUser())
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("user lists assigned projects", func(t *testing.T) {
		m.Project.EXPECT().ListProjectsByUserID(uint(2)).Return(mine, nil)
		got, err := svc.ListProjects(ctx, regularUser(2))
		require.NoError(t, err)
		assert.Equal(t, mine, got)
	})

	t.Run("assigned listing ignores admin role", func(t *testing.T) {
		m.Project.EXPECT().ListProjectsByUserID(uint(1)).Return(nil, nil)
		got, err := svc.ListAssignedProjects(ctx, adminUser())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("detail for unassigned user", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(1)).Return(all[0], nil)
		m.Project.EXPECT().IsAssigned(uint(2), uint(1)).Return(false, nil)
		_, err := svc.GetProject(ctx, regularUser(2), 1)
		assert.Equal(t, ErrNotAssigned, err)
	})

	t.Run("detail for assigned user", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(2)).Return(all[1], nil)
		m.Project.EXPECT().IsAssigned(uint(2), uint(2)).Return(true, nil)
		p, err := svc.GetProject(ctx, regularUser(2), 2)
		require.NoError(t, err)
		assert.Equal(t, uint(2), p.ID)
	})

	t.Run("detail for missing project", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(9)).Return(project.Project{}, gorm.ErrRecordNotFound)
		_, err := svc.GetProject(ctx, adminUser(), 9)
		assert.Equal(t, ErrProjectNotFound, err)
	})
}

func TestProjectService_Listings(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewProjectService(repos)
	ctx := context.Background()

	t.Run("tickets of missing project", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(9)).Return(project.Project{}, gorm.ErrRecordNotFound)
		_, err := svc.ListProjectTickets(ctx, 9)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("tickets", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(1)).Return(project.Project{ID: 1}, nil)
		m.Ticket.EXPECT().ListTicketsByProjectID(uint(1)).Return([]ticket.Ticket{{ID: 4}}, nil)
		got, err := svc.ListProjectTickets(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("users", func(t *testing.T) {
		m.Project.EXPECT().GetProjectByID(uint(1)).Return(project.Project{ID: 1}, nil)
		m.User.EXPECT().ListUsersByProjectID(uint(1)).Return([]user.User{{ID: 2}, {ID: 3}}, nil)
		got, err := svc.ListProjectUsers(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
