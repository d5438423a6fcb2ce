package constants

type TaskStatus string

const (
	StatusTodo          TaskStatus = "todo"
	StatusInProgress    TaskStatus = "inprogress"
	StatusAwaitFeedback TaskStatus = "awaitfeedback"
	StatusDone          TaskStatus = "done"
)

// Statuses lists every workflow status in board column order.
var Statuses = []TaskStatus{StatusTodo, StatusInProgress, StatusAwaitFeedback, StatusDone}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusAwaitFeedback, StatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityUrgent TaskPriority = "urgent"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type ViewMode string

// View modes use the wire values of the board-settings contract: "public"
// is the shared board, "private" is the personal board of a single owner.
const (
	ViewModePublic  ViewMode = "public"
	ViewModePrivate ViewMode = "private"
)

func (m ViewMode) Valid() bool {
	return m == ViewModePublic || m == ViewModePrivate
}

// GuestOwnerID marks tasks created without an authenticated session.
const GuestOwnerID = "guest"

// SubtaskTitleMaxLen caps subtask titles, matching the form input limit.
const SubtaskTitleMaxLen = 200
