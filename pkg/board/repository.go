package board

import "context"

// Draft is a task before creation: everything the backend needs except the
// id and createdAt it assigns itself.
type Draft struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Category    string    `json:"category"`
	Status      Status    `json:"status"`
	AssignedTo  []string  `json:"assignedTo"`
	Subtasks    []Subtask `json:"subtasks"`
	Order       *int      `json:"order,omitempty"`
	IsPrivate   bool      `json:"isPrivate"`
	OwnerID     string    `json:"ownerId,omitempty"`
}

// Repository is the uniform contract over the task backend. Implementations
// hold no task state and never retry on their own; retry policy belongs to
// the caller.
//
// Error contract: *TransportError for network or unrecognized backend
// failures, *ValidationError for rejected payloads, *NotFoundError for
// missing tasks or settings. DeleteTask treats a missing task as success.
type Repository interface {
	// ListTasks fetches the tasks visible under the given scope. An empty
	// result is a valid board, not an error.
	ListTasks(ctx context.Context, scope Scope, userID string) ([]Task, error)
	CreateTask(ctx context.Context, draft Draft) (Task, error)
	UpdateTask(ctx context.Context, id string, patch Patch) error
	DeleteTask(ctx context.Context, id string) error

	// ViewMode reads the stored board scope for a user; first use yields a
	// *NotFoundError and the caller creates the default via SaveViewMode.
	ViewMode(ctx context.Context, userID string) (Settings, error)
	SaveViewMode(ctx context.Context, userID string, mode Scope) (Settings, error)
}

// ContactSource is the read-only contacts collaborator used to populate
// assignment pickers.
type ContactSource interface {
	ListContacts(ctx context.Context) ([]Contact, error)
}
