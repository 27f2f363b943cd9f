package workflow

import (
	"testing"
	"time"

	"assisthub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcademicTicketAssignedToFaculty(t *testing.T) {
	db := setupTestDB(t)
	student := seededUser(t, db, "S001")

	ticket, err := CreateTicket(db, TicketInput{
		Title:    "Doubt about ML grading rubric",
		Category: models.CategoryAcademic,
	}, student)
	require.NoError(t, err)

	assert.Equal(t, models.RoleFaculty, ticket.AssignedToRole)
	assert.Equal(t, models.TicketPending, ticket.Status)
	assert.Equal(t, models.PriorityMedium, ticket.Priority)
	assert.Equal(t, "Alex Johnson", ticket.SubmittedByName)
}

func TestNonAcademicTicketAssignedToAdmin(t *testing.T) {
	db := setupTestDB(t)
	student := seededUser(t, db, "S001")

	for _, category := range []models.TicketCategory{
		models.CategoryWater, models.CategoryHostel, models.CategoryMaintenance,
		models.CategoryIT, models.CategoryInfrastructure,
	} {
		ticket, err := CreateTicket(db, TicketInput{Title: "Issue", Category: category}, student)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, ticket.AssignedToRole, "category %s", category)
	}
}

func TestCreateTicketWritesAuditEntry(t *testing.T) {
	db := setupTestDB(t)
	student := seededUser(t, db, "S001")

	ticket, err := CreateTicket(db, TicketInput{Title: "Broken chair", Category: models.CategoryMaintenance}, student)
	require.NoError(t, err)

	history, err := History(db, ticket.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Ticket Created", history[0].Action)
	assert.Equal(t, "Alex Johnson", history[0].ActorName)
}

func TestStudentCannotTransition(t *testing.T) {
	db := setupTestDB(t)
	student := seededUser(t, db, "S001")

	// T-1002 was submitted by this student; ownership grants read, not transition.
	_, err := TransitionTicket(db, "T-1002", models.TicketResolved, student, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	var ticket models.Ticket
	require.NoError(t, db.First(&ticket, "id = ?", "T-1002").Error)
	assert.Equal(t, models.TicketInProgress, ticket.Status)
}

func TestFacultyCanOnlyActOnAssignedTickets(t *testing.T) {
	db := setupTestDB(t)
	faculty := seededUser(t, db, "F001")
	student := seededUser(t, db, "S001")

	// Seeded tickets are assigned to Admin.
	_, err := TransitionTicket(db, "T-1001", models.TicketInProgress, faculty, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	academic, err := CreateTicket(db, TicketInput{Title: "Exam reschedule query", Category: models.CategoryAcademic}, student)
	require.NoError(t, err)

	updated, err := TransitionTicket(db, academic.ID, models.TicketResolved, faculty, "Rescheduled to Friday.")
	require.NoError(t, err)
	assert.Equal(t, academic.ID, updated.ID)

	var ticket models.Ticket
	require.NoError(t, db.First(&ticket, "id = ?", academic.ID).Error)
	assert.Equal(t, models.TicketResolved, ticket.Status)
	assert.Equal(t, "Rescheduled to Friday.", ticket.ResolutionNotes)
	assert.Equal(t, "F001", ticket.AssignedToID)
}

func TestPendingMaySkipToResolved(t *testing.T) {
	db := setupTestDB(t)
	admin := seededUser(t, db, "A001")

	_, err := TransitionTicket(db, "T-1001", models.TicketResolved, admin, "Replaced the HDMI cable.")
	require.NoError(t, err)

	var ticket models.Ticket
	require.NoError(t, db.First(&ticket, "id = ?", "T-1001").Error)
	assert.Equal(t, models.TicketResolved, ticket.Status)
}

func TestResolutionNotesOnlyOnResolve(t *testing.T) {
	db := setupTestDB(t)
	admin := seededUser(t, db, "A001")

	_, err := TransitionTicket(db, "T-1001", models.TicketInProgress, admin, "notes do not belong here")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var ticket models.Ticket
	require.NoError(t, db.First(&ticket, "id = ?", "T-1001").Error)
	assert.Equal(t, models.TicketPending, ticket.Status)
	assert.Empty(t, ticket.ResolutionNotes)
}

func TestClosedIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	admin := seededUser(t, db, "A001")

	_, err := TransitionTicket(db, "T-1003", models.TicketClosed, admin, "")
	require.NoError(t, err)

	for _, to := range []models.TicketStatus{models.TicketPending, models.TicketInProgress, models.TicketResolved, models.TicketClosed} {
		_, err := TransitionTicket(db, "T-1003", to, admin, "")
		assert.ErrorIs(t, err, ErrInvalidTransition, "transition to %s", to)
	}
}

func TestNoBackwardTransitions(t *testing.T) {
	assert.False(t, CanTransitionTicket(models.TicketInProgress, models.TicketPending))
	assert.False(t, CanTransitionTicket(models.TicketResolved, models.TicketPending))
	assert.False(t, CanTransitionTicket(models.TicketResolved, models.TicketInProgress))
	assert.False(t, CanTransitionTicket(models.TicketPending, models.TicketClosed))
}

func TestHistoryIsReverseChronological(t *testing.T) {
	db := setupTestDB(t)
	admin := seededUser(t, db, "A001")

	_, err := TransitionTicket(db, "T-1001", models.TicketInProgress, admin, "")
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = TransitionTicket(db, "T-1001", models.TicketResolved, admin, "Fixed.")
	require.NoError(t, err)

	history, err := History(db, "T-1001")
	require.NoError(t, err)
	require.Len(t, history, 3) // creation + two transitions

	assert.Contains(t, history[0].Action, "Resolved")
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i-1].CreatedAt.Before(history[i].CreatedAt))
	}
}

func TestTransitionCreatesNotification(t *testing.T) {
	db := setupTestDB(t)
	admin := seededUser(t, db, "A001")

	var before int64
	db.Model(&models.AppNotification{}).Count(&before)

	_, err := TransitionTicket(db, "T-1001", models.TicketResolved, admin, "")
	require.NoError(t, err)

	var after int64
	db.Model(&models.AppNotification{}).Count(&after)
	assert.Equal(t, before+1, after)

	var latest models.AppNotification
	require.NoError(t, db.Order("timestamp DESC").First(&latest).Error)
	assert.Equal(t, "Ticket Update", latest.Title)
	assert.Contains(t, latest.Message, "T-1001")
	assert.Contains(t, latest.Message, "Resolved")
}
