// Package workflow implements the ticket and permission-request state
// machines. Every state change is validated before any row is touched and
// appends exactly one audit entry inside the same transaction.
package workflow

import (
	"errors"
	"time"

	"assisthub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrUnauthorized is returned when the actor's role does not permit the
	// requested transition.
	ErrUnauthorized = errors.New("actor is not allowed to perform this transition")
	// ErrInvalidTransition is returned for transitions outside the state machine,
	// including any transition out of a terminal state.
	ErrInvalidTransition = errors.New("transition not permitted from current status")
	// ErrNotFound is returned when the subject record does not exist.
	ErrNotFound = errors.New("record not found")
)

func appendAudit(tx *gorm.DB, subjectID, action, actorName string) error {
	entry := models.AuditEntry{
		ID:        uuid.NewString(),
		SubjectID: subjectID,
		Action:    action,
		ActorName: actorName,
		CreatedAt: time.Now(),
	}
	return tx.Create(&entry).Error
}

// History returns the audit trail for a ticket or permission request, newest first.
func History(db *gorm.DB, subjectID string) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	err := db.Where("subject_id = ?", subjectID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}
