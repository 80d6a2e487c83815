package application

import (
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
)

func IsAdmin(u *user.User) bool {
	return u.IsAdmin()
}

// RequireAdmin gates project mutations, user administration and the audit log.
func RequireAdmin(u *user.User) error {
	if !IsAdmin(u) {
		return ErrAdminRequired
	}
	return nil
}

// RequireSelfOrAdmin gates actions a user may take on their own record.
func RequireSelfOrAdmin(u *user.User, targetID uint) error {
	if u != nil && u.ID == targetID {
		return nil
	}
	return RequireAdmin(u)
}

// CanViewProject reports whether u may see the project: admins see
// everything, everyone else only projects they are assigned to.
func CanViewProject(repos *repository.Repos, u *user.User, projectID uint) (bool, error) {
	if IsAdmin(u) {
		return true, nil
	}
	if u == nil {
		return false, nil
	}
	return repos.Project.IsAssigned(u.ID, projectID)
}
