package board

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PendingOp is one optimistic patch that has not been confirmed by the
// backend yet. It exists so a refresh can report which local changes it
// superseded instead of silently overwriting them.
type PendingOp struct {
	ID        string
	TaskID    string
	Patch     Patch
	AppliedAt time.Time
}

// Grouping holds the four column lists derived from a snapshot. It is a
// value: filtering or regrouping never touches the underlying cache.
type Grouping struct {
	Todo          []Task
	InProgress    []Task
	AwaitFeedback []Task
	Done          []Task
}

// Column returns the list for a status. Unknown statuses yield nil.
func (g Grouping) Column(status Status) []Task {
	switch status {
	case StatusTodo:
		return g.Todo
	case StatusInProgress:
		return g.InProgress
	case StatusAwaitFeedback:
		return g.AwaitFeedback
	case StatusDone:
		return g.Done
	}
	return nil
}

func (g *Grouping) setColumn(status Status, tasks []Task) {
	switch status {
	case StatusTodo:
		g.Todo = tasks
	case StatusInProgress:
		g.InProgress = tasks
	case StatusAwaitFeedback:
		g.AwaitFeedback = tasks
	case StatusDone:
		g.Done = tasks
	}
}

// Collection is the single in-memory snapshot of tasks for the current
// scope. Refresh replaces it wholesale ("last full read wins"); optimistic
// patches mutate it locally between refreshes.
type Collection struct {
	mu      sync.Mutex
	repo    Repository
	session *Session
	tasks   []Task
	pending []PendingOp
	loaded  bool
}

func NewCollection(repo Repository, session *Session) *Collection {
	return &Collection{
		repo:    repo,
		session: session,
	}
}

// Refresh re-fetches the snapshot for the session's current scope and
// replaces it completely. Unconfirmed optimistic patches are superseded by
// the authoritative data and returned so the caller can surface them; a
// fetch failure leaves the previous snapshot in place.
func (c *Collection) Refresh(ctx context.Context) ([]PendingOp, error) {
	scope := c.session.Scope()
	user := c.session.User()

	tasks, err := c.repo.ListTasks(ctx, scope, user.UserID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	superseded := c.pending
	c.pending = nil
	c.tasks = tasks
	c.loaded = true
	return superseded, nil
}

// Loaded reports whether at least one refresh succeeded, so callers can
// distinguish "no tasks" from "never loaded".
func (c *Collection) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// ApplyOptimistic patches the snapshot locally without a network round trip
// and records a pending operation. The returned op id is confirmed once the
// backend write succeeds; unconfirmed ops are reverted by the next refresh.
func (c *Collection) ApplyOptimistic(taskID string, patch Patch) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.tasks {
		if c.tasks[i].ID != taskID {
			continue
		}
		patch.apply(&c.tasks[i])
		op := PendingOp{
			ID:        uuid.NewString(),
			TaskID:    taskID,
			Patch:     patch,
			AppliedAt: time.Now(),
		}
		c.pending = append(c.pending, op)
		return op.ID, true
	}
	return "", false
}

// Confirm clears a pending operation after the backend acknowledged it.
func (c *Collection) Confirm(opID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.pending {
		if c.pending[i].ID == opID {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the unconfirmed optimistic operations.
func (c *Collection) Pending() []PendingOp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]PendingOp(nil), c.pending...)
}

// Drop removes a task from the snapshot, together with any pending ops
// referencing it. Used after a delete.
func (c *Collection) Drop(taskID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.tasks {
		if c.tasks[i].ID == taskID {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			break
		}
	}
	kept := c.pending[:0]
	for _, op := range c.pending {
		if op.TaskID != taskID {
			kept = append(kept, op)
		}
	}
	c.pending = kept
}

// Get returns a copy of a task from the snapshot.
func (c *Collection) Get(taskID string) (Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.tasks {
		if c.tasks[i].ID == taskID {
			return c.tasks[i], true
		}
	}
	return Task{}, false
}

// Snapshot returns a copy of the full task list in fetch order.
func (c *Collection) Snapshot() []Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Task(nil), c.tasks...)
}

// ByStatus partitions the snapshot into the four columns. Every task lands
// in exactly one column. Within a column, tasks with an order value come
// first sorted ascending; tasks without one follow in fetch order.
func (c *Collection) ByStatus() Grouping {
	snapshot := c.Snapshot()

	var g Grouping
	for _, status := range Statuses {
		var column []Task
		for _, t := range snapshot {
			if t.Status == status {
				column = append(column, t)
			}
		}
		sortColumn(column)
		g.setColumn(status, column)
	}
	return g
}

func sortColumn(column []Task) {
	sort.SliceStable(column, func(i, j int) bool {
		a, b := column[i].Order, column[j].Order
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})
}
