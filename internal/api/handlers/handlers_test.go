package handlers_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/api/middleware"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/audit"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/project"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/ticket"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository/mock"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAvatars struct {
	err error
}

func (s *stubAvatars) UploadAvatar(ctx context.Context, userID uint, ext string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "http://cdn/avatars/a." + ext, nil
}

type env struct {
	router  *gin.Engine
	user    *mock.MockUserRepo
	project *mock.MockProjectRepo
	ticket  *mock.MockTicketRepo
	history *mock.MockHistoryRepo
	audit   *mock.MockAuditRepo
}

func setup(t *testing.T, avatars *stubAvatars) *env {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	e := &env{
		user:    mock.NewMockUserRepo(ctrl),
		project: mock.NewMockProjectRepo(ctrl),
		ticket:  mock.NewMockTicketRepo(ctrl),
		history: mock.NewMockHistoryRepo(ctrl),
		audit:   mock.NewMockAuditRepo(ctrl),
	}
	repos := &repository.Repos{
		User:    e.user,
		Project: e.project,
		Ticket:  e.ticket,
		History: e.history,
		Audit:   e.audit,
	}
	if avatars == nil {
		avatars = &stubAvatars{}
	}
	e.router = testutils.SetupRouter(repos, avatars)
	return e
}

// clientAs returns a client carrying a token for u and expects u to be
// loaded by the authentication middleware.
func (e *env) clientAs(t *testing.T, u user.User) *testutils.HTTPClient {
	token, err := middleware.GenerateToken(u.ID, u.Username, time.Hour)
	require.NoError(t, err)
	e.user.EXPECT().GetUserByID(u.ID).Return(u, nil).AnyTimes()
	return testutils.NewHTTPClient(e.router, token)
}

var (
	admin = user.User{ID: 1, Username: "admin", Email: "admin@test.com", Role: user.RoleAdmin}
	bob   = user.User{ID: 2, Username: "bob", Email: "bob@test.com", Role: user.RoleUser}
)

func TestHealth(t *testing.T) {
	e := setup(t, nil)
	resp, err := testutils.NewHTTPClient(e.router, "").GET("/api/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthentication(t *testing.T) {
	e := setup(t, nil)

	t.Run("missing token", func(t *testing.T) {
		resp, err := testutils.NewHTTPClient(e.router, "").GET("/api/projects")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, err := testutils.NewHTTPClient(e.router, "not-a-jwt").GET("/api/projects")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token for deleted user", func(t *testing.T) {
		token, err := middleware.GenerateToken(42, "ghost", time.Hour)
		require.NoError(t, err)
		e.user.EXPECT().GetUserByID(uint(42)).Return(user.User{}, gorm.ErrRecordNotFound)

		resp, err := testutils.NewHTTPClient(e.router, token).GET("/api/users/me")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "User not found", resp.Error())
	})
}

func TestLogin_BindErrors(t *testing.T) {
	e := setup(t, nil)
	resp, err := testutils.NewHTTPClient(e.router, "").POST("/api/auth/login", map[string]string{"email": "a@test.com"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "password is required", resp.Error())
}

func TestRegister_ConflictIsBadRequest(t *testing.T) {
	e := setup(t, nil)
	e.user.EXPECT().GetUserByEmail("bob@test.com").Return(bob, nil)

	resp, err := testutils.NewHTTPClient(e.router, "").POST("/api/auth/register", map[string]string{
		"username": "bobby",
		"email":    "bob@test.com",
		"password": "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "email is already in use", resp.Error())
}

func TestProjectRoutes(t *testing.T) {
	e := setup(t, nil)
	asAdmin := e.clientAs(t, admin)
	asBob := e.clientAs(t, bob)

	t.Run("non-admin create is forbidden", func(t *testing.T) {
		resp, err := asBob.POST("/api/projects", map[string]string{
			"title": "P", "start_date": "2025-01-01", "end_date": "2025-02-01",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin create with bad date", func(t *testing.T) {
		resp, err := asAdmin.POST("/api/projects", map[string]string{
			"title": "P", "start_date": "2025/01/01", "end_date": "2025-02-01",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, resp.Error(), "start_date")
	})

	t.Run("unassigned detail is forbidden", func(t *testing.T) {
		e.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
		e.project.EXPECT().IsAssigned(uint(2), uint(10)).Return(false, nil)

		resp, err := asBob.GET("/api/projects/10")
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "you are not assigned to this project", resp.Error())
	})

	t.Run("duplicate assignment", func(t *testing.T) {
		e.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
		e.project.EXPECT().IsAssigned(uint(2), uint(10)).Return(true, nil)

		resp, err := asAdmin.POST("/api/projects/10/assign", map[string]uint{"user_id": 2})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("listing for user", func(t *testing.T) {
		e.project.EXPECT().ListProjectsByUserID(uint(2)).Return([]project.Project{{ID: 10, Title: "Mine"}}, nil)

		resp, err := asBob.GET("/api/projects")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []project.ProjectDTO
		require.NoError(t, resp.DecodeJSON(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "Mine", got[0].Title)
		assert.NotNil(t, got[0].AssignedUsers)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, err := asBob.GET("/api/projects/abc")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestTicketRoutes(t *testing.T) {
	e := setup(t, nil)

	t.Run("create without project", func(t *testing.T) {
		resp, err := e.clientAs(t, bob).POST("/api/tickets", map[string]interface{}{
			"title": "T", "description": "d",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "project_id is required", resp.Error())
	})

	t.Run("update missing ticket", func(t *testing.T) {
		e.ticket.EXPECT().GetTicketByID(uint(9)).Return(ticket.Ticket{}, gorm.ErrRecordNotFound)
		resp, err := e.clientAs(t, bob).PUT("/api/tickets/9", map[string]string{"status": "Done"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("null assignee is ignored", func(t *testing.T) {
		assignee := uint(2)
		stored := ticket.Ticket{ID: 6, Title: "T", Status: ticket.StatusToDo, Priority: ticket.PriorityMedium, AssignedUserID: &assignee}
		e.ticket.EXPECT().GetTicketByID(uint(6)).Return(stored, nil).Times(2)
		e.ticket.EXPECT().SaveTicket(gomock.Any()).DoAndReturn(func(t2 *ticket.Ticket) error {
			require.NotNil(t, t2.AssignedUserID)
			assert.Equal(t, uint(2), *t2.AssignedUserID)
			assert.Equal(t, "Renamed", t2.Title)
			return nil
		})

		resp, err := e.clientAs(t, bob).PUT("/api/tickets/6", map[string]interface{}{
			"title": "Renamed", "assigned_user_id": nil,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
	})

t.Run("history", func(t *testing.T) {
		e.ticket.EXPECT().GetTicketByID(uint(5)).Return(ticket.Ticket{ID: 5}, nil)
		e.history.EXPECT().ListHistoryByTicketID(uint(5)).Return([]ticket.History{{
			ID: 1, TicketID: 5, ChangeType: ticket.ChangeStatus, OldValue: "To Do", NewValue: "Done",
			ChangedBy: &user.User{Username: "bob"},
		}}, nil)

		resp, err := e.clientAs(t, bob).GET("/api/tickets/5/history")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []ticket.HistoryDTO
		require.NoError(t, resp.DecodeJSON(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "bob", got[0].ChangedBy)
		assert.Equal(t, ticket.ChangeStatus, got[0].ChangeType)
	})
}

func TestUserRoutes(t *testing.T) {
	t.Run("me hides password", func(t *testing.T) {
		e := setup(t, nil)
		withPassword := bob
		withPassword.Password = "$2a$hash"

		resp, err := e.clientAs(t, withPassword).GET("/api/users/me")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotContains(t, string(resp.Body), "password")
	})

	t.Run("admin self delete via admin endpoint", func(t *testing.T) {
		e := setup(t, nil)
		resp, err := e.clientAs(t, admin).DELETE("/api/users/1")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "admins cannot delete their own account", resp.Error())
	})

	t.Run("non-admin list", func(t *testing.T) {
		e := setup(t, nil)
		resp, err := e.clientAs(t, bob).GET("/api/users")
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("avatar with unsupported extension", func(t *testing.T) {
		e := setup(t, nil)
		resp, err := e.clientAs(t, bob).POSTFile("/api/users/me/avatar", "avatar", "a.bmp", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("avatar provider failure", func(t *testing.T) {
		e := setup(t, &stubAvatars{err: errors.New("provider down")})
		resp, err := e.clientAs(t, bob).POSTFile("/api/users/me/avatar", "avatar", "a.png", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, resp.Error(), "provider down")
	})

	t.Run("avatar success", func(t *testing.T) {
		e := setup(t, nil)
		client := e.clientAs(t, bob)
		e.user.EXPECT().SaveUser(gomock.Any()).Return(nil)

		resp, err := client.POSTFile("/api/users/me/avatar", "avatar", "a.png", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "http://cdn/avatars/a.png")
	})
}

func TestAuditRoutes(t *testing.T) {
	e := setup(t, nil)
	asAdmin := e.clientAs(t, admin)
	asBob := e.clientAs(t, bob)

	t.Run("non-admin", func(t *testing.T) {
		resp, err := asBob.GET("/api/audit/logs")
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("invalid user_id", func(t *testing.T) {
		resp, err := asAdmin.GET("/api/audit/logs?user_id=abc")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("filters", func(t *testing.T) {
		e.audit.EXPECT().GetAuditLogs(gomock.Any()).DoAndReturn(func(p repository.AuditQueryParams) ([]audit.AuditLog, error) {
			require.NotNil(t, p.UserID)
			assert.Equal(t, uint(1), *p.UserID)
			require.NotNil(t, p.ResourceType)
			assert.Equal(t, "project", *p.ResourceType)
			assert.Nil(t, p.Action)
			return []audit.AuditLog{{ID: 3, UserID: 1, Action: "create", ResourceType: "project"}}, nil
		})

		resp, err := asAdmin.GET("/api/audit/logs?user_id=1&resource_type=project")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []audit.AuditLog
		require.NoError(t, resp.DecodeJSON(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "create", got[0].Action)
	})

	t.Run("project entries", func(t *testing.T) {
		e.audit.EXPECT().GetAuditLogs(gomock.Any()).DoAndReturn(func(p repository.AuditQueryParams) ([]audit.AuditLog, error) {
			require.NotNil(t, p.ResourceType)
			assert.Equal(t, audit.ResourceProject, *p.ResourceType)
			require.NotNil(t, p.ResourceID)
			assert.Equal(t, "project_id=4", *p.ResourceID)
			assert.Equal(t, 5, p.Limit)
			assert.Nil(t, p.UserID)
			return nil, nil
		})

		resp, err := asAdmin.GET("/api/audit/logs?project_id=4&limit=5")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid target_user_id", func(t *testing.T) {
		resp, err := asAdmin.GET("/api/audit/logs?target_user_id=-1")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
