package workflow

import (
	"fmt"
	"time"

	"assisthub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CanTransitionPermission allows only Pending→Approved and Pending→Rejected.
// Approved and Rejected are terminal.
func CanTransitionPermission(from, to models.PermissionStatus) bool {
	if from != models.PermissionPending {
		return false
	}
	return to == models.PermissionApproved || to == models.PermissionRejected
}

// CreatePermissionRequest files a new Pending request for the actor.
func CreatePermissionRequest(db *gorm.DB, requestType, details string, actor models.User) (models.PermissionRequest, error) {
	request := models.PermissionRequest{
		ID:            fmt.Sprintf("REQ-%s", uuid.NewString()[:8]),
		Type:          requestType,
		Details:       details,
		RequesterID:   actor.ID,
		RequesterName: actor.Name,
		RequesterRole: actor.Role,
		Status:        models.PermissionPending,
		CreatedAt:     time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&request).Error; err != nil {
			return err
		}
		return appendAudit(tx, request.ID, "Request Submitted", actor.Name)
	})
	return request, err
}

// TransitionPermission decides a pending request. Only Admin actors may
// decide, and decided requests never move again. No row is touched when the
// transition is rejected.
func TransitionPermission(db *gorm.DB, id string, to models.PermissionStatus, actor models.User) (models.PermissionRequest, error) {
	var request models.PermissionRequest

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&request).Error; err != nil {
			return ErrNotFound
		}

		if actor.Role != models.RoleAdmin {
			return ErrUnauthorized
		}
		if !CanTransitionPermission(request.Status, to) {
			return ErrInvalidTransition
		}

		updates := map[string]interface{}{
			"status":      to,
			"approver_id": actor.ID,
		}
		if err := tx.Model(&request).Updates(updates).Error; err != nil {
			return err
		}
		return appendAudit(tx, request.ID, fmt.Sprintf("Request %s", to), actor.Name)
	})
	if err != nil {
		return models.PermissionRequest{}, err
	}
	return request, nil
}
