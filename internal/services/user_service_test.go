package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sq23rd/roster-backend/internal/models"
	"github.com/sq23rd/roster-backend/pkg/apperrors"
)

func TestUserService_ApproveAndDeny(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	register(t, env, "owner@gmail.com", "Password1")
	register(t, env, "jane@gmail.com", "Password1")

	view, err := env.users.ApproveUser("jane@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusApproved, view.Status)

	// Approving twice is a client error, not a silent no-op.
	_, err = env.users.ApproveUser("jane@gmail.com")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "already approved")

	view, err = env.users.DenyUser("jane@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusDenied, view.Status)

	_, err = env.users.DenyUser("jane@gmail.com")
	require.Error(t, err)

	_, err = env.users.ApproveUser("ghost@gmail.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_AssignAdmin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	register(t, env, "owner@gmail.com", "Password1")
	register(t, env, "jane@gmail.com", "Password1")

	view, err := env.users.AssignAdmin("jane@sq23rd.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, view.Role)

	_, err = env.users.AssignAdmin("jane@sq23rd.com")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Message, "already an admin")

	// The owner keeps the owner role.
	_, err = env.users.AssignAdmin("owner@sq23rd.com")
	require.Error(t, err)

	_, err = env.users.AssignAdmin("ghost@sq23rd.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_GetAndDelete(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	register(t, env, "jane@gmail.com", "Password1")

	owner, err := env.userRepo.FindByLoginEmail("jane@sq23rd.com")
	require.NoError(t, err)

	view, err := env.users.GetUser(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@gmail.com", view.PersonalEmail)

	require.NoError(t, env.users.DeleteUser(owner.ID))
	_, err = env.users.GetUser(owner.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	assert.ErrorIs(t, env.users.DeleteUser(owner.ID), apperrors.ErrUserNotFound)
}

func TestUserService_ListAndPaginate(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	for i := 0; i < 7; i++ {
		register(t, env, fmt.Sprintf("user%d@gmail.com", i), "Password1")
	}

	all, err := env.users.ListUsers()
	require.NoError(t, err)
	assert.Len(t, all, 7)

	page, err := env.users.ListUsersPage(2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Users, 3)

	last, err := env.users.ListUsersPage(3, 3)
	require.NoError(t, err)
	assert.Len(t, last.Users, 1)

	// Out-of-range values fall back to defaults.
	fallback, err := env.users.ListUsersPage(0, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, fallback.Page)
	assert.Equal(t, 20, fallback.Limit)
}
