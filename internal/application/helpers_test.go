package application

import (
	"testing"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository/mock"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type repoMocks struct {
	User    *mock.MockUserRepo
	Project *mock.MockProjectRepo
	Ticket  *mock.MockTicketRepo
	History *mock.MockHistoryRepo
	Audit   *mock.MockAuditRepo
}

// --------------------- Setup ---------------------
func setupRepoMocks(t *testing.T) (*repository.Repos, *repoMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &repoMocks{
		User:    mock.NewMockUserRepo(ctrl),
		Project: mock.NewMockProjectRepo(ctrl),
		Ticket:  mock.NewMockTicketRepo(ctrl),
		History: mock.NewMockHistoryRepo(ctrl),
		Audit:   mock.NewMockAuditRepo(ctrl),
	}
	repos := &repository.Repos{
		User:    m.User,
		Project: m.Project,
		Ticket:  m.Ticket,
		History: m.History,
		Audit:   m.Audit,
	}

	oldHash := utils.HashPassword
	utils.HashPassword = func(password string) (string, error) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		return string(hashed), err
	}
	t.Cleanup(func() { utils.HashPassword = oldHash })

	return repos, m
}

func adminUser() *user.User {
	return &user.User{ID: 1, Username: "admin", Email: "admin@test.com", Role: user.RoleAdmin}
}

func regularUser(id uint) *user.User {
	return &user.User{ID: id, Username: "user", Email: "user@test.com", Role: user.RoleUser}
}

func ptrString(s string) *string {
	return &s
}

func ptrUint(v uint) *uint {
	return &v
}
