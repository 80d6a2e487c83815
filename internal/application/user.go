package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/audit"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
)

// AvatarStore turns an uploaded image into a stored thumbnail and returns its public URL.
type AvatarStore interface {
	UploadAvatar(ctx context.Context, userID uint, ext string, r io.Reader) (string, error)
}

var allowedAvatarExt = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

// AvatarExtension returns the lowercased extension of filename if it is an accepted image type.
func AvatarExtension(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedAvatarExt[ext] {
		return "", ErrUnsupportedImage
	}
	return ext, nil
}

type UserService struct {
	Repos   *repository.Repos
	Avatars AvatarStore
}

func NewUserService(repos *repository.Repos, avatars AvatarStore) *UserService {
	return &UserService{
		Repos:   repos,
		Avatars: avatars,
	}
}

func (s *UserService) GetUser(ctx context.Context, caller *user.User, id uint) (*user.User, error) {
	if err := RequireSelfOrAdmin(caller, id); err != nil {
		return nil, err
	}
	u, err := s.Repos.WithContext(ctx).User.GetUserByID(id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &u, nil
}

func (s *UserService) ListUsers(ctx context.Context, caller *user.User) ([]user.User, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}
	return s.Repos.WithContext(ctx).User.ListUsers()
}

// UpdateProfile patches the caller's own username, email or password.
func (s *UserService) UpdateProfile(ctx context.Context, caller *user.User, input user.UpdateProfileInput) (*user.User, error) {
	return s.update(ctx, caller, caller.ID, user.AdminUpdateInput{UpdateProfileInput: input}, false)
}

// UpdateUser is the admin variant of UpdateProfile and may also change the role.
func (s *UserService) UpdateUser(ctx context.Context, caller *user.User, id uint, input user.AdminUpdateInput) (*user.User, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}
	return s.update(ctx, caller, id, input, true)
}

func (s *UserService) update(ctx context.Context, caller *user.User, id uint, input user.AdminUpdateInput, audited bool) (*user.User, error) {
	var role user.Role
	if input.Role != nil {
		role = user.Role(*input.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
	}

	var updated user.User
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		u, err := tx.User.GetUserByID(id)
		if err != nil {
			return notFound(err, ErrUserNotFound)
		}
		before := u

		var email, username string
		if input.Email != nil && *input.Email != u.Email {
			email = strings.TrimSpace(*input.Email)
		}
		if input.Username != nil && *input.Username != u.Username {
			username = strings.TrimSpace(*input.Username)
		}
		if err := ensureUnique(tx, email, username, u.ID); err != nil {
			return err
		}
		if email != "" {
			u.Email = email
		}
		if username != "" {
			u.Username = username
		}
		if input.Password != nil && *input.Password != "" {
			hashed, err := utils.HashPassword(*input.Password)
			if err != nil {
				return ErrPasswordHashFailure
			}
			u.Password = hashed
		}
		if role != "" {
			u.Role = role
		}

		if err := tx.User.SaveUser(&u); err != nil {
			return conflict(err, ErrEmailTaken)
		}
		updated = u
		if !audited {
			return nil
		}
		return utils.LogAudit(tx.Audit, caller.ID, "update", audit.ResourceUser, audit.UserResourceID(u.ID),
			user.ToDTO(before), user.ToDTO(u), "")
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSelf removes the caller's own account.
func (s *UserService) DeleteSelf(ctx context.Context, caller *user.User) error {
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		return deleteUserCascade(tx, caller.ID)
	})
}

// DeleteUser is the admin endpoint; admins cannot remove themselves through it.
func (s *UserService) DeleteUser(ctx context.Context, caller *user.User, id uint) error {
	if err := RequireAdmin(caller); err != nil {
		return err
	}
	if caller.ID == id {
		return ErrSelfDelete
	}
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		u, err := tx.User.GetUserByID(id)
		if err != nil {
			return notFound(err, ErrUserNotFound)
		}
		if err := deleteUserCascade(tx, id); err != nil {
			return err
		}
		return utils.LogAudit(tx.Audit, caller.ID, "delete", audit.ResourceUser, audit.UserResourceID(id),
			user.ToDTO(u), nil, "")
	})
}

// deleteUserCascade clears every row referencing the user, then the user itself.
// Projects the user owns keep their owner_id.
func deleteUserCascade(tx *repository.Repos, userID uint) error {
	if _, err := tx.User.GetUserByID(userID); err != nil {
		return notFound(err, ErrUserNotFound)
	}
	if err := tx.Project.RemoveAssignmentsByUserID(userID); err != nil {
		return err
	}
	if err := tx.Ticket.UnassignUser(userID); err != nil {
		return err
	}
	ticketIDs, err := tx.Ticket.ListTicketIDsByCreator(userID)
	if err != nil {
		return err
	}
	for _, id := range ticketIDs {
		if err := tx.History.DeleteHistoryByTicketID(id); err != nil {
			return err
		}
		if err := tx.Ticket.DeleteTicket(id); err != nil {
			return err
		}
	}
	if err := tx.History.DeleteHistoryByAuthor(userID); err != nil {
		return err
	}
	return tx.User.DeleteUser(userID)
}

// UploadAvatar stores a thumbnail of the image for the target user and saves its URL.
func (s *UserService) UploadAvatar(ctx context.Context, caller *user.User, targetID uint, filename string, r io.Reader) (*user.User, error) {
	if err := RequireSelfOrAdmin(caller, targetID); err != nil {
		return nil, err
	}
	ext, err := AvatarExtension(filename)
	if err != nil {
		return nil, err
	}

	repos := s.Repos.WithContext(ctx)
	u, err := repos.User.GetUserByID(targetID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	url, err := s.Avatars.UploadAvatar(ctx, u.ID, ext, r)
	if err != nil {
		return nil, uploadError(err)
	}
	u.Avatar = &url
	if err := repos.User.SaveUser(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
