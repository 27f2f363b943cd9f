package workflow

import (
	"fmt"
	"time"

	"assisthub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ticketTransitions is the full ticket state machine. Closed has no outgoing
// edges; Pending may skip straight to Resolved.
var ticketTransitions = map[models.TicketStatus][]models.TicketStatus{
	models.TicketPending:    {models.TicketInProgress, models.TicketResolved},
	models.TicketInProgress: {models.TicketResolved},
	models.TicketResolved:   {models.TicketClosed},
	models.TicketClosed:     {},
}

// CanTransitionTicket reports whether the edge from→to exists.
func CanTransitionTicket(from, to models.TicketStatus) bool {
	for _, next := range ticketTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanActOnTicket reports whether the actor may change this ticket's status.
// Admins act on any ticket; otherwise the actor's role must match the
// assigned role, and Students never transition tickets.
func CanActOnTicket(actor models.User, ticket models.Ticket) bool {
	if actor.Role == models.RoleAdmin {
		return true
	}
	if actor.Role == models.RoleStudent {
		return false
	}
	return actor.Role == ticket.AssignedToRole
}

// AssignRoleForCategory routes a new ticket. Academic enquiries go to
// Faculty, everything else to Admin.
func AssignRoleForCategory(category models.TicketCategory) models.UserRole {
	if category == models.CategoryAcademic {
		return models.RoleFaculty
	}
	return models.RoleAdmin
}

type TicketInput struct {
	Title       string
	Category    models.TicketCategory
	Description string
	Priority    models.TicketPriority
}

// CreateTicket inserts a new Pending ticket for the actor and writes its
// creation audit entry.
func CreateTicket(db *gorm.DB, input TicketInput, actor models.User) (models.Ticket, error) {
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	ticket := models.Ticket{
		ID:              fmt.Sprintf("T-%s", uuid.NewString()[:8]),
		Title:           input.Title,
		Category:        input.Category,
		Description:     input.Description,
		Status:          models.TicketPending,
		Priority:        priority,
		SubmittedBy:     actor.ID,
		SubmittedByName: actor.Name,
		AssignedToRole:  AssignRoleForCategory(input.Category),
		CreatedAt:       time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}
		return appendAudit(tx, ticket.ID, "Ticket Created", actor.Name)
	})
	return ticket, err
}

// TransitionTicket moves a ticket to a new status on behalf of the actor.
// The guard and the state machine are checked before anything is written;
// a rejected transition leaves the ticket untouched. Resolution notes are
// accepted only on a transition to Resolved.
func TransitionTicket(db *gorm.DB, id string, to models.TicketStatus, actor models.User, resolutionNotes string) (models.Ticket, error) {
	var ticket models.Ticket

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND is_deleted = ?", id, false).First(&ticket).Error; err != nil {
			return ErrNotFound
		}

		if !CanActOnTicket(actor, ticket) {
			return ErrUnauthorized
		}
		if !CanTransitionTicket(ticket.Status, to) {
			return ErrInvalidTransition
		}
		if resolutionNotes != "" && to != models.TicketResolved {
			return ErrInvalidTransition
		}

		updates := map[string]interface{}{"status": to}
		action := fmt.Sprintf("Status updated to %s", to)
		if to == models.TicketResolved {
			updates["assigned_to_id"] = actor.ID
			if resolutionNotes != "" {
				updates["resolution_notes"] = resolutionNotes
				action = fmt.Sprintf("Status updated to %s with resolution: %q", to, resolutionNotes)
			}
		}

		if err := tx.Model(&ticket).Updates(updates).Error; err != nil {
			return err
		}
		if err := appendAudit(tx, ticket.ID, action, actor.Name); err != nil {
			return err
		}

		// In-app notification for the status change.
		notification := models.AppNotification{
			ID:        "n-" + uuid.NewString()[:8],
			Title:     "Ticket Update",
			Message:   fmt.Sprintf("Ticket #%s is now %s.", ticket.ID, to),
			Type:      "info",
			Timestamp: time.Now(),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}
