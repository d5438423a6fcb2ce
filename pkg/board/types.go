package board

import (
	"github.com/google/uuid"
)

// Status decides column membership: a task sits in exactly the column named
// by its status, nothing else.
type Status string

const (
	StatusTodo          Status = "todo"
	StatusInProgress    Status = "inprogress"
	StatusAwaitFeedback Status = "awaitfeedback"
	StatusDone          Status = "done"
)

// Statuses lists the workflow statuses in board column order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusAwaitFeedback, StatusDone}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusAwaitFeedback, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Scope selects which board a query sees. The constants carry the wire
// values of the backend contract: the shared board is "public", the
// personal board of a single owner is "private".
type Scope string

const (
	ScopeShared   Scope = "public"
	ScopePersonal Scope = "private"
)

func (s Scope) Valid() bool {
	return s == ScopeShared || s == ScopePersonal
}

// GuestUserID is the sentinel identity used when no session exists.
const GuestUserID = "guest"

// Subtask belongs to exactly one task. IDs are generated on the client and
// only need to be unique within the parent.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewSubtask builds a subtask with a fresh client-side id.
func NewSubtask(title string) Subtask {
	return Subtask{ID: uuid.NewString(), Title: title}
}

// Task mirrors the backend wire shape. Timestamps stay RFC 3339 strings;
// createdAt is assigned by the backend and never rewritten.
type Task struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Category    string    `json:"category"`
	Status      Status    `json:"status"`
	AssignedTo  []string  `json:"assignedTo"`
	Subtasks    []Subtask `json:"subtasks"`
	CreatedAt   string    `json:"createdAt,omitempty"`
	UpdatedAt   string    `json:"updatedAt,omitempty"`
	Order       *int      `json:"order,omitempty"`
	IsPrivate   bool      `json:"isPrivate"`
	OwnerID     string    `json:"ownerId,omitempty"`
}

// Contact is the read-only assignment target supplied by the contacts
// collaborator.
type Contact struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Settings is the per-user board-settings record.
type Settings struct {
	UserID      string `json:"userId"`
	ViewMode    Scope  `json:"viewMode"`
	LastChanged string `json:"lastChanged,omitempty"`
}
