package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(adminUser()))
	assert.False(t, IsAdmin(regularUser(2)))
	assert.False(t, IsAdmin(nil))
}

func TestRequireSelfOrAdmin(t *testing.T) {
	assert.NoError(t, RequireSelfOrAdmin(regularUser(2), 2))
	assert.NoError(t, RequireSelfOrAdmin(adminUser(), 2))
	assert.ErrorIs(t, RequireSelfOrAdmin(regularUser(3), 2), ErrForbidden)
	assert.ErrorIs(t, RequireSelfOrAdmin(nil, 2), ErrForbidden)
}

func TestCanViewProject(t *testing.T) {
	repos, m := setupRepoMocks(t)

	t.Run("admin sees every project", func(t *testing.T) {
		ok, err := CanViewProject(repos, adminUser(), 10)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("assigned user", func(t *testing.T) {
		m.Project.EXPECT().IsAssigned(uint(2), uint(10)).Return(true, nil)
		ok, err := CanViewProject(repos, regularUser(2), 10)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unassigned user", func(t *testing.T) {
		m.Project.EXPECT().IsAssigned(uint(3), uint(10)).Return(false, nil)
		ok, err := CanViewProject(repos, regularUser(3), 10)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("lookup failure", func(t *testing.T) {
		m.Project.EXPECT().IsAssigned(uint(4), uint(10)).Return(false, errors.New("db down"))
		_, err := CanViewProject(repos, regularUser(4), 10)
		assert.Error(t, err)
	})
}

func TestErrorCategories(t *testing.T) {
	assert.ErrorIs(t, ErrEmailTaken, ErrConflict)
	assert.ErrorIs(t, ErrSelfDelete, ErrValidation)
	assert.ErrorIs(t, ErrNotAssigned, ErrForbidden)
	assert.NotErrorIs(t, ErrNotAssigned, ErrNotFound)

	up := uploadError(errors.New("quota exceeded"))
	assert.ErrorIs(t, up, ErrUpload)
	assert.Contains(t, up.Error(), "quota exceeded")
}
