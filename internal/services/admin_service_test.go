package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/constants"
	"odr-lab/platform/internal/db/repositories"
	"odr-lab/platform/internal/models/dtos/requests"
)

func TestAdminService_UpdateUserRole(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewAdminService(repositories.NewUserRepository(gdb), nil)

	user := createTestUser(t, gdb, "Promotee", "p@example.com", constants.RoleInnovator)

	role := "MENTOR"
	profile, err := svc.UpdateUser(context.Background(), user.ID, requests.UpdateUserRequest{UserRole: &role})
	require.NoError(t, err)
	assert.Equal(t, "MENTOR", profile.UserRole)

	bad := "SUPERUSER"
	_, err = svc.UpdateUser(context.Background(), user.ID, requests.UpdateUserRequest{UserRole: &bad})
	var wfErr *common.WorkflowError
	require.ErrorAs(t, err, &wfErr)
	assert.Equal(t, 400, wfErr.Status)
}

func TestAdminService_GetUnknownUser(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewAdminService(repositories.NewUserRepository(gdb), nil)

	_, err := svc.GetUser(context.Background(), "missing-id")
	var wfErr *common.WorkflowError
	require.ErrorAs(t, err, &wfErr)
	assert.Equal(t, 404, wfErr.Status)
}

func TestAdminService_ListAndDelete(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewAdminService(repositories.NewUserRepository(gdb), nil)

	createTestUser(t, gdb, "A", "a@example.com", constants.RoleInnovator)
	victim := createTestUser(t, gdb, "B", "b@example.com", constants.RoleInnovator)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, svc.DeleteUser(context.Background(), victim.ID))

	users, err = svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)

	err = svc.DeleteUser(context.Background(), victim.ID)
	var wfErr *common.WorkflowError
	require.ErrorAs(t, err, &wfErr)
	assert.Equal(t, 404, wfErr.Status)
}
