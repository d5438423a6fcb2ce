package board

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// ReorderFailure records one task whose order update did not persist.
type ReorderFailure struct {
	TaskID string
	Err    error
}

// ReorderResult reports the outcome of a renumbering pass. Renumbering
// issues one persistence call per task, so some updates may land while
// others fail; updates that already committed are not rolled back.
type ReorderResult struct {
	Persisted int
	Failed    []ReorderFailure
}

func (r ReorderResult) Ok() bool {
	return len(r.Failed) == 0
}

// Controller drives the board: column moves, renumbering, creation and
// deletion. Mutations are applied optimistically to the collection first,
// then persisted; a persistence failure leaves the optimistic state in
// place until the next refresh corrects it. Transitions happen only on
// explicit calls here, never on timers.
type Controller struct {
	mu       sync.Mutex
	repo     Repository
	cache    *Collection
	session  *Session
	selected string
}

func NewController(repo Repository, cache *Collection, session *Session) *Controller {
	return &Controller{
		repo:    repo,
		cache:   cache,
		session: session,
	}
}

// Move puts a task into the target column. Any status-to-status move is
// allowed, not just adjacent ones. On a missing task the cache is refreshed
// to resync with the backend.
func (c *Controller) Move(ctx context.Context, taskID string, target Status) error {
	if !target.Valid() {
		return fmt.Errorf("invalid status %q", target)
	}

	patch := Patch{}.
		WithStatus(target).
		WithUpdatedAt(time.Now().UTC().Format(time.RFC3339))

	opID, _ := c.cache.ApplyOptimistic(taskID, patch)

	if err := c.repo.UpdateTask(ctx, taskID, patch); err != nil {
		log.WithError(err).WithField("task", taskID).Error("move failed")
		if IsNotFound(err) {
			if _, rerr := c.cache.Refresh(ctx); rerr != nil {
				log.WithError(rerr).Warn("resync after missing task failed")
			}
		}
		return err
	}

	if opID != "" {
		c.cache.Confirm(opID)
	}
	return nil
}

// Reorder moves the task at fromIdx to toIdx within one column and
// renumbers the whole column 0..n-1 so order values stay gap-free.
func (c *Controller) Reorder(ctx context.Context, column Status, fromIdx, toIdx int) (ReorderResult, error) {
	tasks := c.cache.ByStatus().Column(column)
	if fromIdx < 0 || fromIdx >= len(tasks) || toIdx < 0 || toIdx >= len(tasks) {
		return ReorderResult{}, fmt.Errorf("reorder index out of range")
	}
	if fromIdx == toIdx {
		return ReorderResult{}, nil
	}

	moved := tasks[fromIdx]
	tasks = append(tasks[:fromIdx], tasks[fromIdx+1:]...)
	tasks = insertTask(tasks, toIdx, moved)

	return c.renumber(ctx, tasks, nil, moved.ID), nil
}

// MoveAt is the cross-column drag: the task leaves its source column, lands
// at targetIdx in the target column, and both columns are renumbered.
func (c *Controller) MoveAt(ctx context.Context, taskID string, target Status, targetIdx int) (ReorderResult, error) {
	if !target.Valid() {
		return ReorderResult{}, fmt.Errorf("invalid status %q", target)
	}
	task, ok := c.cache.Get(taskID)
	if !ok {
		return ReorderResult{}, &NotFoundError{Resource: "task", ID: taskID}
	}
	if task.Status == target {
		grouping := c.cache.ByStatus()
		fromIdx := indexOf(grouping.Column(target), taskID)
		return c.Reorder(ctx, target, fromIdx, targetIdx)
	}

	grouping := c.cache.ByStatus()
	source := grouping.Column(task.Status)
	dest := grouping.Column(target)

	if targetIdx < 0 || targetIdx > len(dest) {
		return ReorderResult{}, fmt.Errorf("target index out of range")
	}

	fromIdx := indexOf(source, taskID)
	if fromIdx < 0 {
		return ReorderResult{}, &NotFoundError{Resource: "task", ID: taskID}
	}
	source = append(source[:fromIdx], source[fromIdx+1:]...)

	task.Status = target
	dest = insertTask(dest, targetIdx, task)

	return c.renumber(ctx, dest, source, taskID), nil
}

// renumber persists order 0..n-1 over the given column lists. The moved
// task additionally gets its status and updatedAt persisted. Each task is
// one backend call; failures are collected per item and already-committed
// updates stay committed.
func (c *Controller) renumber(ctx context.Context, dest, source []Task, movedID string) ReorderResult {
	var result ReorderResult
	now := time.Now().UTC().Format(time.RFC3339)

	persist := func(t Task, idx int) {
		patch := Patch{}.WithOrder(idx)
		if t.ID == movedID {
			patch = patch.WithStatus(t.Status).WithUpdatedAt(now)
		}

		opID, _ := c.cache.ApplyOptimistic(t.ID, patch)
		if err := c.repo.UpdateTask(ctx, t.ID, patch); err != nil {
			log.WithError(err).WithField("task", t.ID).Error("renumber failed")
			result.Failed = append(result.Failed, ReorderFailure{TaskID: t.ID, Err: err})
			return
		}
		if opID != "" {
			c.cache.Confirm(opID)
		}
		result.Persisted++
	}

	for idx, t := range dest {
		persist(t, idx)
	}
	for idx, t := range source {
		persist(t, idx)
	}
	return result
}

// Create adds a task. Status defaults to todo unless the add action came
// from a specific column; scope and ownership come from the session. The
// snapshot is refreshed afterwards so the backend-assigned id and
// createdAt become visible.
func (c *Controller) Create(ctx context.Context, draft Draft, origin *Status) (Task, error) {
	if draft.Title == "" {
		return Task{}, &ValidationError{Op: "create task", Message: "title is required"}
	}

	if origin != nil && origin.Valid() {
		draft.Status = *origin
	}
	if draft.Status == "" {
		draft.Status = StatusTodo
	}

	user := c.session.User()
	draft.IsPrivate = c.session.Scope() == ScopePersonal
	if draft.OwnerID == "" {
		draft.OwnerID = user.UserID
	}
	if draft.OwnerID == "" {
		draft.OwnerID = GuestUserID
	}

	created, err := c.repo.CreateTask(ctx, draft)
	if err != nil {
		return Task{}, err
	}

	if _, err := c.cache.Refresh(ctx); err != nil {
		log.WithError(err).Warn("refresh after create failed")
	}
	return created, nil
}

// Delete removes a task. A task that is already gone counts as deleted.
// The selection is cleared when it referenced the task.
func (c *Controller) Delete(ctx context.Context, taskID string) error {
	if err := c.repo.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	c.cache.Drop(taskID)

	c.mu.Lock()
	if c.selected == taskID {
		c.selected = ""
	}
	c.mu.Unlock()
	return nil
}

// Select marks a task as the active selection (the open task modal).
func (c *Controller) Select(taskID string) {
	c.mu.Lock()
	c.selected = taskID
	c.mu.Unlock()
}

func (c *Controller) Selected() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

func (c *Controller) ClearSelection() {
	c.Select("")
}

func insertTask(tasks []Task, idx int, task Task) []Task {
	if idx >= len(tasks) {
		return append(tasks, task)
	}
	tasks = append(tasks[:idx+1], tasks[idx:]...)
	tasks[idx] = task
	return tasks
}

func indexOf(tasks []Task, taskID string) int {
	for i := range tasks {
		if tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}
