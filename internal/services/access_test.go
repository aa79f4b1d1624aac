package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
)

func TestOwnerIsAlwaysAdminAndAuthorized(t *testing.T) {
	setupTestDB()

	assert.True(t, services.IsOwner(testOwnerID))
	assert.True(t, services.IsAdmin(testOwnerID))
	assert.True(t, services.IsAuthorized(testOwnerID))

	assert.False(t, services.IsOwner(testUserID))
	assert.False(t, services.IsAdmin(testUserID))
	assert.False(t, services.IsAuthorized(testUserID))
}

func TestAddAndRemoveAdmin(t *testing.T) {
	setupTestDB()

	added, err := services.AddAdmin(testOwnerID, testAdminID)
	assert.NoError(t, err)
	assert.True(t, added)
	assert.True(t, services.IsAdmin(testAdminID))

	// Adding again is an informational no-op
	added, err = services.AddAdmin(testOwnerID, testAdminID)
	assert.NoError(t, err)
	assert.False(t, added)

	// Revocation takes effect immediately
	removed, err := services.RemoveAdmin(testOwnerID, testAdminID)
	assert.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, services.IsAdmin(testAdminID))

	removed, err = services.RemoveAdmin(testOwnerID, testAdminID)
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestAdminManagementIsOwnerOnly(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)

	_, err := services.AddAdmin(testAdminID, 4000)
	assert.ErrorIs(t, err, services.ErrPermissionDenied)

	_, err = services.RemoveAdmin(testAdminID, testAdminID)
	assert.ErrorIs(t, err, services.ErrPermissionDenied)

	// The owner id itself can never be removed
	_, err = services.RemoveAdmin(testOwnerID, testOwnerID)
	assert.ErrorIs(t, err, services.ErrPermissionDenied)
}

func TestAuthorizeAndUnauthorize(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)

	added, err := services.Authorize(testAdminID, testUserID)
	assert.NoError(t, err)
	assert.True(t, added)
	assert.True(t, services.IsAuthorized(testUserID))

	added, err = services.Authorize(testAdminID, testUserID)
	assert.NoError(t, err)
	assert.False(t, added)

	removed, err := services.Unauthorize(testAdminID, testUserID)
	assert.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, services.IsAuthorized(testUserID))
}

func TestAuthorizeRequiresAdmin(t *testing.T) {
	setupTestDB()

	_, err := services.Authorize(testUserID, 4000)
	assert.ErrorIs(t, err, services.ErrPermissionDenied)

	_, err = services.Unauthorize(testUserID, 4000)
	assert.ErrorIs(t, err, services.ErrPermissionDenied)
}

func TestAdminIDsListsOwnerFirst(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)
	makeAdmin(2001)

	ids, err := services.AdminIDs()
	assert.NoError(t, err)
	assert.Equal(t, []int64{testOwnerID, testAdminID, 2001}, ids)
}

func TestAccessChangeNotifications(t *testing.T) {
	setupTestDB()
	sender := &recordingSender{}
	services.Notify = sender

	_, err := services.AddAdmin(testOwnerID, testAdminID)
	assert.NoError(t, err)
	_, err = services.Authorize(testOwnerID, testUserID)
	assert.NoError(t, err)

	assert.Len(t, sender.requests, 2)
	assert.Equal(t, testAdminID, sender.requests[0].RecipientID)
	assert.Equal(t, testUserID, sender.requests[1].RecipientID)
}
