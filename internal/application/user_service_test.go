package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAvatarStore struct {
	url    string
	err    error
	called bool
}

func (f *fakeAvatarStore) UploadAvatar(ctx context.Context, userID uint, ext string, r io.Reader) (string, error) {
	f.called = true
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func TestUserService_UpdateProfile(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewUserService(repos, nil)
	ctx := context.Background()
	me := &user.User{ID: 2, Username: "bob", Email: "bob@test.com", Password: "old", Role: user.RoleUser}

	t.Run("email taken by another user", func(t *testing.T) {
		m.User.EXPECT().GetUserByID(uint(2)).Return(*me, nil)
		m.User.EXPECT().GetUserByEmail("alice@test.com").Return(user.User{ID: 1}, nil)

		_, err := svc.UpdateProfile(ctx, me, user.UpdateProfileInput{Email: ptrString("alice@test.com")})
		assert.Equal(t, ErrEmailTaken, err)
	})

	t.Run("username taken by another user", func(t *testing.T) {
		m.User.EXPECT().GetUserByID(uint(2)).Return(*me, nil)
		m.User.EXPECT().GetUserByUsername("alice").Return(user.User{ID: 1}, nil)

		_, err := svc.UpdateProfile(ctx, me, user.UpdateProfileInput{Username: ptrString("alice")})
		assert.Equal(t, ErrUsernameTaken, err)
	})

	t.Run("password is re-hashed", func(t *testing.T) {
		m.User.EXPECT().GetUserByID(uint(2)).Return(*me, nil)
		m.User.EXPECT().SaveUser(gomock.Any()).Return(nil)

		u, err := svc.UpdateProfile(ctx, me, user.UpdateProfileInput{Password: ptrString("n3w")})
		require.NoError(t, err)
		assert.True(t, utils.CheckPassword(u.Password, "n3w"))
		assert.Equal(t, "bob", u.Username)
	})

	t.Run("role cannot change through profile", func(t *testing.T) {
		m.User.EXPECT().GetUserByID(uint(2)).Return(*me, nil)
		m.User.EXPECT().SaveUser(gomock.Any()).Return(nil)

		u, err := svc.UpdateProfile(ctx, me, user.UpdateProfileInput{})
		require.NoError(t, err)
		assert.Equal(t, user.RoleUser, u.Role)
	})
}

func TestUserService_AdminUpdate(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewUserService(repos, nil)
	ctx := context.Background()

	t.Run("non-admin is rejected", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, regularUser(2), 3, user.AdminUpdateInput{})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, adminUser(), 3, user.AdminUpdateInput{Role: ptrString("superuser")})
		assert.Equal(t, ErrInvalidRole, err)
	})

	t.Run("promote to admin", func(t *testing.T) {
		m.User.EXPECT().GetUserByID(uint(3)).Return(user.User{ID: 3, Role: user.RoleUser}, nil)
		m.User.EXPECT().SaveUser(gomock.Any()).Return(nil)
		m.Audit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

		u, err := svc.UpdateUser(ctx, adminUser(), 3, user.AdminUpdateInput{Role: ptrString("admin")})
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, u.Role)
	})

	t.Run("missing user", func(t *testing.T) {
		m.User.EXPECT().GetUserByID(uint(9)).Return(user.User{}, gorm.ErrRecordNotFound)
		_, err := svc.UpdateUser(ctx, adminUser(), 9, user.AdminUpdateInput{})
		assert.Equal(t, ErrUserNotFound, err)
	})
}

func TestUserService_GetAndList(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewUserService(repos, nil)
	ctx := context.Background()

	t.Run("list requires admin", func(t *testing.T) {
		_, err := svc.ListUsers(ctx, regularUser(2))
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin lists", func(t *testing.T) {
		m.User.EXPECT().ListUsers().Return([]user.User{{ID: 1}, {ID: 2}}, nil)
		got, err := svc.ListUsers(ctx, adminUser())
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("other user's record is forbidden", func(t *testing.T) {
		_, err := svc.GetUser(ctx, regularUser(2), 3)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin reads missing user", func(t *testing.T) {
		m.User.EXPECT().GetUserByID(uint(9)).Return(user.User{}, gorm.ErrRecordNotFound)
		_, err := svc.GetUser(ctx, adminUser(), 9)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func expectCascade(m *repoMocks, userID uint, created []uint) {
	calls := []*gomock.Call{
		m.User.EXPECT().GetUserByID(userID).Return(user.User{ID: userID}, nil),
		m.Project.EXPECT().RemoveAssignmentsByUserID(userID).Return(nil),
		m.Ticket.EXPECT().UnassignUser(userID).Return(nil),
		m.Ticket.EXPECT().ListTicketIDsByCreator(userID).Return(created, nil),
	}
	for _, id := range created {
		calls = append(calls,
			m.History.EXPECT().DeleteHistoryByTicketID(id).Return(nil),
			m.Ticket.EXPECT().DeleteTicket(id).Return(nil),
		)
	}
	calls = append(calls,
		m.History.EXPECT().DeleteHistoryByAuthor(userID).Return(nil),
		m.User.EXPECT().DeleteUser(userID).Return(nil),
	)
	gomock.InOrder(calls...)
}

func TestUserService_Delete(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewUserService(repos, nil)
	ctx := context.Background()

	t.Run("admin cannot delete self via admin endpoint", func(t *testing.T) {
		err := svc.DeleteUser(ctx, adminUser(), 1)
		assert.Equal(t, ErrSelfDelete, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		err := svc.DeleteUser(ctx, regularUser(2), 3)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin deletes another user with cascade", func(t *testing.T) {
		m.User.EXPECT().GetUserByID(uint(3)).Return(user.User{ID: 3}, nil)
		expectCascade(m, 3, []uint{11, 12})
		m.Audit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

		assert.NoError(t, svc.DeleteUser(ctx, adminUser(), 3))
	})

	t.Run("self delete is allowed for admins", func(t *testing.T) {
		expectCascade(m, 1, nil)
		assert.NoError(t, svc.DeleteSelf(ctx, adminUser()))
	})

	t.Run("missing user", func(t *testing.T) {
		m.User.EXPECT().GetUserByID(uint(9)).Return(user.User{}, gorm.ErrRecordNotFound)
		assert.Equal(t, ErrUserNotFound, svc.DeleteUser(ctx, adminUser(), 9))
	})
}

func TestUserService_UploadAvatar(t *testing.T) {
	ctx := context.Background()
	body := strings.NewReader("image-bytes")

	t.Run("unsupported extension", func(t *testing.T) {
		repos, _ := setupRepoMocks(t)
		store := &fakeAvatarStore{}
		svc := NewUserService(repos, store)

		_, err := svc.UploadAvatar(ctx, regularUser(2), 2, "avatar.bmp", body)
		assert.Equal(t, ErrUnsupportedImage, err)
		assert.False(t, store.called)
	})

	t.Run("other user without admin", func(t *testing.T) {
		repos, _ := setupRepoMocks(t)
		svc := NewUserService(repos, &fakeAvatarStore{})

		_, err := svc.UploadAvatar(ctx, regularUser(2), 3, "avatar.png", body)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("storage failure", func(t *testing.T) {
		repos, m := setupRepoMocks(t)
		svc := NewUserService(repos, &fakeAvatarStore{err: errors.New("provider unavailable")})
		m.User.EXPECT().GetUserByID(uint(2)).Return(user.User{ID: 2}, nil)

		_, err := svc.UploadAvatar(ctx, regularUser(2), 2, "avatar.png", body)
		require.ErrorIs(t, err, ErrUpload)
		assert.Contains(t, err.Error(), "provider unavailable")
	})

	t.Run("admin uploads on behalf", func(t *testing.T) {
		repos, m := setupRepoMocks(t)
		svc := NewUserService(repos, &fakeAvatarStore{url: "http://cdn/avatars/users/3/x.jpg"})
		m.User.EXPECT().GetUserByID(uint(3)).Return(user.User{ID: 3}, nil)
		m.User.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
			require.NotNil(t, u.Avatar)
			assert.Equal(t, "http://cdn/avatars/users/3/x.jpg", *u.Avatar)
			return nil
		})

		u, err := svc.UploadAvatar(ctx, adminUser(), 3, "Photo.JPG", body)
		require.NoError(t, err)
		assert.Equal(t, "http://cdn/avatars/users/3/x.jpg", *u.Avatar)
	})
}

func TestAvatarExtension(t *testing.T) {
	for _, name := range []string{"a.jpg", "a.JPEG", "a.png", "a.gif"} {
		_, err := AvatarExtension(name)
		assert.NoError(t, err, name)
	}
	for _, name := range []string{"a.bmp", "a", "a.png.exe"} {
		_, err := AvatarExtension(name)
		assert.ErrorIs(t, err, ErrValidation, name)
	}
}
