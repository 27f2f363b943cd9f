package workflow

import (
	"testing"

	"assisthub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminApprovesPendingRequest(t *testing.T) {
	db := setupTestDB(t)
	admin := seededUser(t, db, "A001")

	request, err := TransitionPermission(db, "REQ-001", models.PermissionApproved, admin)
	require.NoError(t, err)
	assert.Equal(t, "REQ-001", request.ID)

	var stored models.PermissionRequest
	require.NoError(t, db.First(&stored, "id = ?", "REQ-001").Error)
	assert.Equal(t, models.PermissionApproved, stored.Status)
	assert.Equal(t, "A001", stored.ApproverID)
}

func TestApprovedRequestIsNoLongerActionable(t *testing.T) {
	db := setupTestDB(t)
	admin := seededUser(t, db, "A001")

	_, err := TransitionPermission(db, "REQ-001", models.PermissionApproved, admin)
	require.NoError(t, err)

	for _, to := range []models.PermissionStatus{models.PermissionApproved, models.PermissionRejected, models.PermissionPending} {
		_, err := TransitionPermission(db, "REQ-001", to, admin)
		assert.ErrorIs(t, err, ErrInvalidTransition, "transition to %s", to)
	}
}

func TestSeededApprovedRequestIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	admin := seededUser(t, db, "A001")

	_, err := TransitionPermission(db, "REQ-002", models.PermissionRejected, admin)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOnlyAdminDecidesRequests(t *testing.T) {
	db := setupTestDB(t)

	for _, id := range []string{"S001", "F001"} {
		actor := seededUser(t, db, id)
		_, err := TransitionPermission(db, "REQ-001", models.PermissionApproved, actor)
		assert.ErrorIs(t, err, ErrUnauthorized, "actor %s", id)
	}

	var stored models.PermissionRequest
	require.NoError(t, db.First(&stored, "id = ?", "REQ-001").Error)
	assert.Equal(t, models.PermissionPending, stored.Status)
}

func TestDecisionAppendsOneAuditEntry(t *testing.T) {
	db := setupTestDB(t)
	admin := seededUser(t, db, "A001")

	_, err := TransitionPermission(db, "REQ-001", models.PermissionRejected, admin)
	require.NoError(t, err)

	history, err := History(db, "REQ-001")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Request Rejected", history[0].Action)
	assert.Equal(t, "Marcus Chen", history[0].ActorName)
}

func TestCreatePermissionRequest(t *testing.T) {
	db := setupTestDB(t)
	student := seededUser(t, db, "S001")

	request, err := CreatePermissionRequest(db, "Lab Access", "Need the IoT lab on Saturday", student)
	require.NoError(t, err)

	assert.Equal(t, models.PermissionPending, request.Status)
	assert.Equal(t, "Alex Johnson", request.RequesterName)
	assert.Equal(t, models.RoleStudent, request.RequesterRole)

	history, err := History(db, request.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Request Submitted", history[0].Action)
}
